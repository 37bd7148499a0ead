// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/internal/render"
)

// envPrefix is prepended to every environment variable read by this
// package, so the tool's own settings never collide with FLYWAY_ or flyway_
// configuration keys.
const envPrefix = "FLYCONF_"

// Settings configures the flyconf command itself: how it logs, where it
// looks for configuration files and how it prints the result. It is
// unrelated to the migration configuration the command resolves.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name, after the FLYCONF_ prefix.
//   - json:      key in the optional settings file.
type Settings struct {
	// Log controls the diagnostics written to stderr.
	Log Log `envPrefix:"LOG_" json:"log"`

	// WorkingDirectory is joined with relative configuration file paths.
	// Env: FLYCONF_WORKING_DIRECTORY
	WorkingDirectory string `env:"WORKING_DIRECTORY" json:"working_directory"`

	// ConfigFiles are the configuration files to merge, in order.
	// Env: FLYCONF_CONFIG_FILES (comma separated)
	ConfigFiles []string `env:"CONFIG_FILES" envSeparator:"," json:"config_files"`

	// Output is the format `flyconf resolve` prints: toml, yaml or json.
	// Env: FLYCONF_OUTPUT
	Output string `env:"OUTPUT" json:"output"`

	// SettingsFile is the optional path to a JSON file holding these
	// settings. It is read from the environment or flags, never from the
	// file itself.
	// Env: FLYCONF_SETTINGS
	SettingsFile string `env:"SETTINGS" json:"-"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: FLYCONF_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// Format is "text" for a terminal or "json" for log collectors.
	// Env: FLYCONF_LOG_FORMAT
	Format string `env:"FORMAT" json:"format"`
}

// defaults returns the settings used when no source sets a field.
func defaults() *Settings {
	return &Settings{
		Log: Log{
			Level:  "info",
			Format: logger.FormatText,
		},
		Output: render.FormatTOML,
	}
}

// Load assembles [Settings] from all available sources in the following
// priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Settings file (path resolved from sources 3 and 4)
//  3. FLYCONF_* variables of environ, an os.Environ() snapshot
//  4. Flags of flags that the user actually set
//
// Returns an error if any source fails to load or the result is invalid.
func Load(environ []string, flags *pflag.FlagSet) (*Settings, error) {
	return newSettingsBuilder().
		withEnv(environ).
		withFlags(flags).
		withJSON().
		build()
}
