package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by the commands and [Load].
const (
	FlagLogLevel         = "log-level"
	FlagLogFormat        = "log-format"
	FlagSettings         = "settings"
	FlagConfig           = "config"
	FlagWorkingDirectory = "working-directory"
	FlagOutput           = "output"
)

// RegisterGlobalFlags defines the flags every command accepts.
//
// Flags:
//
//	--log-level   zerolog level name (default info)
//	--log-format  text or json (default text)
//	--settings    JSON settings file path
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.String(FlagLogLevel, "", "log level: trace, debug, info, warn, error (default info)")
	fs.String(FlagLogFormat, "", "log format: text or json (default text)")
	fs.String(FlagSettings, "", "JSON file with flyconf settings")
}

// RegisterResolveFlags defines the flags that locate and print configuration.
//
// Flags:
//
//	-c/--config            configuration file, repeatable, later files win
//	--working-directory    base for relative configuration file paths
//	-o/--output            toml, yaml or json (default toml)
func RegisterResolveFlags(fs *pflag.FlagSet) {
	fs.StringArrayP(FlagConfig, "c", nil, "configuration file (repeatable, later files win)")
	fs.String(FlagWorkingDirectory, "", "directory relative configuration files are resolved against")
	fs.StringP(FlagOutput, "o", "", "output format: toml, yaml or json (default toml)")
}

// parseFlags returns the settings carried by the flags of fs that were set
// on the command line. Flags left at their defaults, or never registered on
// fs, contribute nothing so lower-priority sources keep their values.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}

	stringFlags := map[string]*string{
		FlagLogLevel:         &cfg.Log.Level,
		FlagLogFormat:        &cfg.Log.Format,
		FlagSettings:         &cfg.SettingsFile,
		FlagWorkingDirectory: &cfg.WorkingDirectory,
		FlagOutput:           &cfg.Output,
	}
	for name, dst := range stringFlags {
		if !fs.Changed(name) {
			continue
		}

		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	if fs.Changed(FlagConfig) {
		files, err := fs.GetStringArray(FlagConfig)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagConfig, err)
		}
		cfg.ConfigFiles = files
	}

	return cfg, nil
}
