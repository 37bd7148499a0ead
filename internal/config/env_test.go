// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := []string{
		"FLYCONF_LOG_LEVEL=debug",
		"FLYCONF_LOG_FORMAT=json",
		"FLYCONF_WORKING_DIRECTORY=/srv/app",
		"FLYCONF_CONFIG_FILES=base.toml,local.yaml",
		"FLYCONF_OUTPUT=yaml",
		"FLYCONF_SETTINGS=/etc/flyconf.json",
	}

	// Act
	cfg := &Settings{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, "/srv/app", cfg.WorkingDirectory)
	assert.Equal(t, []string{"base.toml", "local.yaml"}, cfg.ConfigFiles)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "/etc/flyconf.json", cfg.SettingsFile)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	// Arrange
	environ := []string{
		"LOG_LEVEL=debug",
		"OUTPUT=json",
		"FLYWAY_URL=jdbc:h2:mem",
		"flyway_locations=db",
	}

	// Act
	cfg := &Settings{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	cfg := &Settings{}
	require.NoError(t, parseEnv(cfg, nil))
	assert.Equal(t, &Settings{}, cfg)
}
