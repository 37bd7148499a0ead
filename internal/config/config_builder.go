package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := defaults()
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *settingsBuilder) withEnv(environ []string) *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withFlags(flags *pflag.FlagSet) *settingsBuilder {
	if flags == nil {
		return b
	}

	flagCfg, err := parseFlags(flags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON loads the settings file named by the sources added so far and
// places it below them, so environment and flags still override the file.
func (b *settingsBuilder) withJSON() *settingsBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.SettingsFile != "" {
			path = cfg.SettingsFile
		}
	}

	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = slices.Insert(b.configs, 0, jsonCfg)
	return b
}
