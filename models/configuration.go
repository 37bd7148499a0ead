// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"slices"
)

// DefaultEnvironmentName is the implicit environment that flat connection
// keys (flyway.url, FLYWAY_USER, ...) are rewritten into.
const DefaultEnvironmentName = "default"

// Configuration is the typed result of resolving configuration from
// environment variables, command-line overrides, or configuration files.
//
// Every load returns a fresh instance owned by the caller. Instances from
// different sources are combined with [Merge].
type Configuration struct {
	// Environments holds connection settings keyed by environment name.
	Environments map[string]Environment `mapstructure:"environments" toml:"environments,omitempty" yaml:"environments,omitempty" json:"environments,omitempty"`

	// Flyway holds tool-wide settings that are not tied to a connection.
	Flyway Flyway `mapstructure:"flyway" toml:"flyway" yaml:"flyway" json:"flyway"`
}

// Environment holds the connection-scoped settings of a single named
// environment.
//
// The mapstructure tag names of this struct are the field names recognized by
// the legacy alias rewrite and must stay in sync with [EnvironmentFields].
type Environment struct {
	URL                    string            `mapstructure:"url" toml:"url,omitempty" yaml:"url,omitempty" json:"url,omitempty"`
	User                   string            `mapstructure:"user" toml:"user,omitempty" yaml:"user,omitempty" json:"user,omitempty"`
	Password               string            `mapstructure:"password" toml:"password,omitempty" yaml:"password,omitempty" json:"password,omitempty"`
	Driver                 string            `mapstructure:"driver" toml:"driver,omitempty" yaml:"driver,omitempty" json:"driver,omitempty"`
	Schemas                []string          `mapstructure:"schemas" toml:"schemas,omitempty" yaml:"schemas,omitempty" json:"schemas,omitempty"`
	ConnectRetries         *int              `mapstructure:"connectRetries" toml:"connectRetries,omitempty" yaml:"connectRetries,omitempty" json:"connectRetries,omitempty"`
	ConnectRetriesInterval *int              `mapstructure:"connectRetriesInterval" toml:"connectRetriesInterval,omitempty" yaml:"connectRetriesInterval,omitempty" json:"connectRetriesInterval,omitempty"`
	InitSQL                string            `mapstructure:"initSql" toml:"initSql,omitempty" yaml:"initSql,omitempty" json:"initSql,omitempty"`
	JDBCProperties         map[string]string `mapstructure:"jdbcProperties" toml:"jdbcProperties,omitempty" yaml:"jdbcProperties,omitempty" json:"jdbcProperties,omitempty"`
	JarDirs                []string          `mapstructure:"jarDirs" toml:"jarDirs,omitempty" yaml:"jarDirs,omitempty" json:"jarDirs,omitempty"`
}

// EnvironmentFields is the set of key names declared on [Environment].
var EnvironmentFields = map[string]struct{}{
	"url":                    {},
	"user":                   {},
	"password":               {},
	"driver":                 {},
	"schemas":                {},
	"connectRetries":         {},
	"connectRetriesInterval": {},
	"initSql":                {},
	"jdbcProperties":         {},
	"jarDirs":                {},
}

// IsEnvironmentField reports whether name is a key declared on [Environment].
func IsEnvironmentField(name string) bool {
	_, ok := EnvironmentFields[name]
	return ok
}

// Flyway holds the tool-wide migration settings.
type Flyway struct {
	// Environment selects the entry of [Configuration.Environments] to use.
	Environment string `mapstructure:"environment" toml:"environment,omitempty" yaml:"environment,omitempty" json:"environment,omitempty"`

	Locations               []string `mapstructure:"locations" toml:"locations,omitempty" yaml:"locations,omitempty" json:"locations,omitempty"`
	Callbacks               []string `mapstructure:"callbacks" toml:"callbacks,omitempty" yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	IgnoreMigrationPatterns []string `mapstructure:"ignoreMigrationPatterns" toml:"ignoreMigrationPatterns,omitempty" yaml:"ignoreMigrationPatterns,omitempty" json:"ignoreMigrationPatterns,omitempty"`
	SQLMigrationSuffixes    []string `mapstructure:"sqlMigrationSuffixes" toml:"sqlMigrationSuffixes,omitempty" yaml:"sqlMigrationSuffixes,omitempty" json:"sqlMigrationSuffixes,omitempty"`

	Table                 string `mapstructure:"table" toml:"table,omitempty" yaml:"table,omitempty" json:"table,omitempty"`
	Tablespace            string `mapstructure:"tablespace" toml:"tablespace,omitempty" yaml:"tablespace,omitempty" json:"tablespace,omitempty"`
	Target                string `mapstructure:"target" toml:"target,omitempty" yaml:"target,omitempty" json:"target,omitempty"`
	DefaultSchema         string `mapstructure:"defaultSchema" toml:"defaultSchema,omitempty" yaml:"defaultSchema,omitempty" json:"defaultSchema,omitempty"`
	Encoding              string `mapstructure:"encoding" toml:"encoding,omitempty" yaml:"encoding,omitempty" json:"encoding,omitempty"`
	InstalledBy           string `mapstructure:"installedBy" toml:"installedBy,omitempty" yaml:"installedBy,omitempty" json:"installedBy,omitempty"`
	BaselineVersion       string `mapstructure:"baselineVersion" toml:"baselineVersion,omitempty" yaml:"baselineVersion,omitempty" json:"baselineVersion,omitempty"`
	BaselineDescription   string `mapstructure:"baselineDescription" toml:"baselineDescription,omitempty" yaml:"baselineDescription,omitempty" json:"baselineDescription,omitempty"`
	PlaceholderPrefix     string `mapstructure:"placeholderPrefix" toml:"placeholderPrefix,omitempty" yaml:"placeholderPrefix,omitempty" json:"placeholderPrefix,omitempty"`
	PlaceholderSuffix     string `mapstructure:"placeholderSuffix" toml:"placeholderSuffix,omitempty" yaml:"placeholderSuffix,omitempty" json:"placeholderSuffix,omitempty"`
	SQLMigrationPrefix    string `mapstructure:"sqlMigrationPrefix" toml:"sqlMigrationPrefix,omitempty" yaml:"sqlMigrationPrefix,omitempty" json:"sqlMigrationPrefix,omitempty"`
	SQLMigrationSeparator string `mapstructure:"sqlMigrationSeparator" toml:"sqlMigrationSeparator,omitempty" yaml:"sqlMigrationSeparator,omitempty" json:"sqlMigrationSeparator,omitempty"`

	Placeholders map[string]string `mapstructure:"placeholders" toml:"placeholders,omitempty" yaml:"placeholders,omitempty" json:"placeholders,omitempty"`

	CleanDisabled           *bool `mapstructure:"cleanDisabled" toml:"cleanDisabled,omitempty" yaml:"cleanDisabled,omitempty" json:"cleanDisabled,omitempty"`
	BaselineOnMigrate       *bool `mapstructure:"baselineOnMigrate" toml:"baselineOnMigrate,omitempty" yaml:"baselineOnMigrate,omitempty" json:"baselineOnMigrate,omitempty"`
	ValidateOnMigrate       *bool `mapstructure:"validateOnMigrate" toml:"validateOnMigrate,omitempty" yaml:"validateOnMigrate,omitempty" json:"validateOnMigrate,omitempty"`
	ValidateMigrationNaming *bool `mapstructure:"validateMigrationNaming" toml:"validateMigrationNaming,omitempty" yaml:"validateMigrationNaming,omitempty" json:"validateMigrationNaming,omitempty"`
	OutOfOrder              *bool `mapstructure:"outOfOrder" toml:"outOfOrder,omitempty" yaml:"outOfOrder,omitempty" json:"outOfOrder,omitempty"`
	Group                   *bool `mapstructure:"group" toml:"group,omitempty" yaml:"group,omitempty" json:"group,omitempty"`
	Mixed                   *bool `mapstructure:"mixed" toml:"mixed,omitempty" yaml:"mixed,omitempty" json:"mixed,omitempty"`
	PlaceholderReplacement  *bool `mapstructure:"placeholderReplacement" toml:"placeholderReplacement,omitempty" yaml:"placeholderReplacement,omitempty" json:"placeholderReplacement,omitempty"`
	CreateSchemas           *bool `mapstructure:"createSchemas" toml:"createSchemas,omitempty" yaml:"createSchemas,omitempty" json:"createSchemas,omitempty"`
	FailOnMissingLocations  *bool `mapstructure:"failOnMissingLocations" toml:"failOnMissingLocations,omitempty" yaml:"failOnMissingLocations,omitempty" json:"failOnMissingLocations,omitempty"`
	SkipDefaultCallbacks    *bool `mapstructure:"skipDefaultCallbacks" toml:"skipDefaultCallbacks,omitempty" yaml:"skipDefaultCallbacks,omitempty" json:"skipDefaultCallbacks,omitempty"`

	LockRetryCount *int `mapstructure:"lockRetryCount" toml:"lockRetryCount,omitempty" yaml:"lockRetryCount,omitempty" json:"lockRetryCount,omitempty"`
}

// Defaults returns the documented baseline every merge starts from.
func Defaults() *Configuration {
	return &Configuration{
		Environments: map[string]Environment{
			DefaultEnvironmentName: {
				ConnectRetries:         Ptr(0),
				ConnectRetriesInterval: Ptr(120),
			},
		},
		Flyway: Flyway{
			Environment:             DefaultEnvironmentName,
			Locations:               []string{"db/migration"},
			SQLMigrationSuffixes:    []string{".sql"},
			Table:                   "flyway_schema_history",
			Encoding:                "UTF-8",
			BaselineVersion:         "1",
			BaselineDescription:     "<< Flyway Baseline >>",
			PlaceholderPrefix:       "${",
			PlaceholderSuffix:       "}",
			SQLMigrationPrefix:      "V",
			SQLMigrationSeparator:   "__",
			CleanDisabled:           Ptr(true),
			BaselineOnMigrate:       Ptr(false),
			ValidateOnMigrate:       Ptr(true),
			ValidateMigrationNaming: Ptr(false),
			OutOfOrder:              Ptr(false),
			Group:                   Ptr(false),
			Mixed:                   Ptr(false),
			PlaceholderReplacement:  Ptr(true),
			CreateSchemas:           Ptr(true),
			FailOnMissingLocations:  Ptr(false),
			SkipDefaultCallbacks:    Ptr(false),
			LockRetryCount:          Ptr(50),
		},
	}
}

// CurrentEnvironment returns the environment selected by flyway.environment,
// falling back to [DefaultEnvironmentName] when none is named.
func (c *Configuration) CurrentEnvironment() (string, Environment, bool) {
	name := c.Flyway.Environment
	if name == "" {
		name = DefaultEnvironmentName
	}

	env, ok := c.Environments[name]
	return name, env, ok
}

// Validate checks structural invariants of a merged configuration.
func (c *Configuration) Validate() error {
	name := c.Flyway.Environment
	if name == "" || name == DefaultEnvironmentName {
		return nil
	}

	if _, ok := c.Environments[name]; !ok {
		return &UnknownEnvironmentError{Name: name}
	}

	return nil
}

// Clone returns a deep copy of c. Merging into the copy never touches c.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}

	out := &Configuration{Flyway: c.Flyway.clone()}
	if c.Environments != nil {
		out.Environments = make(map[string]Environment, len(c.Environments))
		for name, env := range c.Environments {
			out.Environments[name] = env.clone()
		}
	}

	return out
}

func (e Environment) clone() Environment {
	e.Schemas = slices.Clone(e.Schemas)
	e.JarDirs = slices.Clone(e.JarDirs)
	e.JDBCProperties = maps.Clone(e.JDBCProperties)
	e.ConnectRetries = clonePtr(e.ConnectRetries)
	e.ConnectRetriesInterval = clonePtr(e.ConnectRetriesInterval)
	return e
}

func (f Flyway) clone() Flyway {
	f.Locations = slices.Clone(f.Locations)
	f.Callbacks = slices.Clone(f.Callbacks)
	f.IgnoreMigrationPatterns = slices.Clone(f.IgnoreMigrationPatterns)
	f.SQLMigrationSuffixes = slices.Clone(f.SQLMigrationSuffixes)
	f.Placeholders = maps.Clone(f.Placeholders)

	f.CleanDisabled = clonePtr(f.CleanDisabled)
	f.BaselineOnMigrate = clonePtr(f.BaselineOnMigrate)
	f.ValidateOnMigrate = clonePtr(f.ValidateOnMigrate)
	f.ValidateMigrationNaming = clonePtr(f.ValidateMigrationNaming)
	f.OutOfOrder = clonePtr(f.OutOfOrder)
	f.Group = clonePtr(f.Group)
	f.Mixed = clonePtr(f.Mixed)
	f.PlaceholderReplacement = clonePtr(f.PlaceholderReplacement)
	f.CreateSchemas = clonePtr(f.CreateSchemas)
	f.FailOnMissingLocations = clonePtr(f.FailOnMissingLocations)
	f.SkipDefaultCallbacks = clonePtr(f.SkipDefaultCallbacks)
	f.LockRetryCount = clonePtr(f.LockRetryCount)
	return f
}

// Ptr returns a pointer to v, for populating nullable fields.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
