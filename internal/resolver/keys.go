// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"slices"
	"strings"

	"github.com/MKhiriev/flyconf/models"
)

// Source identifies the surface a raw entry was read from.
type Source int

const (
	SourceEnvironment Source = iota
	SourceCommandLine
)

func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "environment"
	case SourceCommandLine:
		return "command line"
	default:
		return "unknown"
	}
}

// noun is how a single entry of the source is called in warnings.
func (s Source) noun() string {
	if s == SourceCommandLine {
		return "command-line argument"
	}
	return "environment variable"
}

// Entry is one raw key/value pair exactly as read from its source.
type Entry struct {
	Key    string
	Value  string
	Source Source
}

// IsLegacy reports whether the entry uses the old upper-case FLYWAY_ naming.
func (e Entry) IsLegacy() bool {
	return strings.HasPrefix(e.Key, legacyPrefix)
}

const (
	legacyPrefix       = "FLYWAY_"
	flywayPrefix       = "flyway_"
	environmentsPrefix = "environments_"

	flywayNamespace = "flyway."
	keySeparator    = "."
)

// NormalizeKey converts a raw key into its canonical dotted form and
// applies [AliasKey]. It reports false for keys that are not configuration.
//
// Environment keys are recognized by the flyway_ and environments_ prefixes,
// whose underscores become dots, and by the legacy FLYWAY_ prefix when
// [LegacyKey] knows the name. Command-line keys are dotted already. Keys with
// an empty segment, such as flyway__extra or flyway_, name nothing and are
// dropped like any other unrecognized key.
func NormalizeKey(e Entry) (string, bool) {
	var key string

	switch e.Source {
	case SourceCommandLine:
		if e.Key == "" {
			return "", false
		}
		key = e.Key
	case SourceEnvironment:
		switch {
		case strings.HasPrefix(e.Key, flywayPrefix), strings.HasPrefix(e.Key, environmentsPrefix):
			key = strings.ReplaceAll(e.Key, "_", keySeparator)
		case strings.HasPrefix(e.Key, legacyPrefix):
			legacy, ok := LegacyKey(e.Key)
			if !ok {
				return "", false
			}
			key = legacy
		default:
			return "", false
		}
	default:
		return "", false
	}

	if slices.Contains(strings.Split(key, keySeparator), "") {
		return "", false
	}

	return AliasKey(key), true
}

// AliasKey moves a key of the form flyway.<field>[...] under the default
// environment when <field> is declared on [models.Environment]. Any other
// key is returned unchanged. Only the name is checked, never the value.
func AliasKey(key string) string {
	rest, ok := strings.CutPrefix(key, flywayNamespace)
	if !ok {
		return key
	}

	field, _, _ := strings.Cut(rest, keySeparator)
	if !models.IsEnvironmentField(field) {
		return key
	}

	return "environments." + models.DefaultEnvironmentName + keySeparator + rest
}

// legacyKeys maps the upper-case environment variables of older releases to
// their dotted names.
var legacyKeys = map[string]string{
	"FLYWAY_URL":                       "flyway.url",
	"FLYWAY_USER":                      "flyway.user",
	"FLYWAY_PASSWORD":                  "flyway.password",
	"FLYWAY_DRIVER":                    "flyway.driver",
	"FLYWAY_SCHEMAS":                   "flyway.schemas",
	"FLYWAY_CONNECT_RETRIES":           "flyway.connectRetries",
	"FLYWAY_CONNECT_RETRIES_INTERVAL":  "flyway.connectRetriesInterval",
	"FLYWAY_INIT_SQL":                  "flyway.initSql",
	"FLYWAY_JAR_DIRS":                  "flyway.jarDirs",
	"FLYWAY_ENVIRONMENT":               "flyway.environment",
	"FLYWAY_LOCATIONS":                 "flyway.locations",
	"FLYWAY_CALLBACKS":                 "flyway.callbacks",
	"FLYWAY_IGNORE_MIGRATION_PATTERNS": "flyway.ignoreMigrationPatterns",
	"FLYWAY_SQL_MIGRATION_SUFFIXES":    "flyway.sqlMigrationSuffixes",
	"FLYWAY_TABLE":                     "flyway.table",
	"FLYWAY_TABLESPACE":                "flyway.tablespace",
	"FLYWAY_TARGET":                    "flyway.target",
	"FLYWAY_DEFAULT_SCHEMA":            "flyway.defaultSchema",
	"FLYWAY_ENCODING":                  "flyway.encoding",
	"FLYWAY_INSTALLED_BY":              "flyway.installedBy",
	"FLYWAY_BASELINE_VERSION":          "flyway.baselineVersion",
	"FLYWAY_BASELINE_DESCRIPTION":      "flyway.baselineDescription",
	"FLYWAY_PLACEHOLDER_PREFIX":        "flyway.placeholderPrefix",
	"FLYWAY_PLACEHOLDER_SUFFIX":        "flyway.placeholderSuffix",
	"FLYWAY_SQL_MIGRATION_PREFIX":      "flyway.sqlMigrationPrefix",
	"FLYWAY_SQL_MIGRATION_SEPARATOR":   "flyway.sqlMigrationSeparator",
	"FLYWAY_CLEAN_DISABLED":            "flyway.cleanDisabled",
	"FLYWAY_BASELINE_ON_MIGRATE":       "flyway.baselineOnMigrate",
	"FLYWAY_VALIDATE_ON_MIGRATE":       "flyway.validateOnMigrate",
	"FLYWAY_VALIDATE_MIGRATION_NAMING": "flyway.validateMigrationNaming",
	"FLYWAY_OUT_OF_ORDER":              "flyway.outOfOrder",
	"FLYWAY_GROUP":                     "flyway.group",
	"FLYWAY_MIXED":                     "flyway.mixed",
	"FLYWAY_PLACEHOLDER_REPLACEMENT":   "flyway.placeholderReplacement",
	"FLYWAY_CREATE_SCHEMAS":            "flyway.createSchemas",
	"FLYWAY_FAIL_ON_MISSING_LOCATIONS": "flyway.failOnMissingLocations",
	"FLYWAY_SKIP_DEFAULT_CALLBACKS":    "flyway.skipDefaultCallbacks",
	"FLYWAY_LOCK_RETRY_COUNT":          "flyway.lockRetryCount",
}

const (
	legacyPlaceholdersPrefix   = "FLYWAY_PLACEHOLDERS_"
	legacyJDBCPropertiesPrefix = "FLYWAY_JDBC_PROPERTIES_"
)

// LegacyKey converts an upper-case FLYWAY_ variable to its dotted name.
//
// Besides the fixed table, FLYWAY_PLACEHOLDERS_<NAME> becomes
// flyway.placeholders.<name> (lower-cased) and FLYWAY_JDBC_PROPERTIES_<NAME>
// becomes flyway.jdbcProperties.<NAME>.
func LegacyKey(name string) (string, bool) {
	if key, ok := legacyKeys[name]; ok {
		return key, true
	}

	if suffix, ok := strings.CutPrefix(name, legacyPlaceholdersPrefix); ok && suffix != "" {
		return "flyway.placeholders." + strings.ToLower(suffix), true
	}

	if suffix, ok := strings.CutPrefix(name, legacyJDBCPropertiesPrefix); ok && suffix != "" {
		return "flyway.jdbcProperties." + suffix, true
	}

	return "", false
}
