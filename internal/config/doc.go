// Package config loads the settings of the flyconf command itself.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON settings file named by FLYCONF_SETTINGS or --settings
//  3. FLYCONF_* environment variables
//  4. Command-line flags
//
// The main entry point is [Load]. The migration configuration that flyconf
// resolves is handled by package resolver, not here.
package config
