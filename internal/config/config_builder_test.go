package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONSettings(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "flyconf.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterGlobalFlags(fs)
	RegisterResolveFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderReturnsDefaults(t *testing.T) {
	cfg, err := newSettingsBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newSettingsBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsWin(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs,
		&Settings{Output: "yaml", ConfigFiles: []string{"a.toml", "b.toml"}},
		&Settings{Output: "json", WorkingDirectory: "/srv"},
		&Settings{ConfigFiles: []string{"c.toml"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/srv", cfg.WorkingDirectory)
	assert.Equal(t, []string{"c.toml"}, cfg.ConfigFiles)
	assert.Equal(t, "info", cfg.Log.Level, "defaults fill unset fields")
}

func TestBuild_NormalizesAndValidates(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{Output: "YAML", Log: Log{Format: "JSON"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Settings
		wantErr error
	}{
		{name: "level", cfg: &Settings{Log: Log{Level: "chatty"}}, wantErr: ErrInvalidLogLevel},
		{name: "log format", cfg: &Settings{Log: Log{Format: "xml"}}, wantErr: ErrInvalidLogFormat},
		{name: "output", cfg: &Settings{Output: "ini"}, wantErr: ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSettingsBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_FileRanksBelowOtherSources(t *testing.T) {
	path := writeTempJSONSettings(t, map[string]any{
		"output":            "yaml",
		"working_directory": "/from/file",
		"log":               map[string]string{"level": "debug"},
	})

	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{SettingsFile: path, Output: "json"})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/from/file", cfg.WorkingDirectory)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONSettings(t, map[string]any{"output": "yaml"})
	last := writeTempJSONSettings(t, map[string]any{"output": "json"})

	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{SettingsFile: first}, &Settings{SettingsFile: last})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "json", b.configs[0].Output)
}

func TestWithJSON_Errors(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not valid json"), 0o600))
	unknown := writeTempJSONSettings(t, map[string]any{"outptu": "json"})

	for name, path := range map[string]string{
		"missing":     "/nonexistent/flyconf.json",
		"malformed":   malformed,
		"unknown key": unknown,
	} {
		t.Run(name, func(t *testing.T) {
			b := newSettingsBuilder()
			b.configs = append(b.configs, &Settings{SettingsFile: path})
			b.withJSON()

			assert.Error(t, b.err)
			assert.Len(t, b.configs, 1)
		})
	}
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSONSettings(t, map[string]any{
		"output":       "yaml",
		"config_files": []string{"file.toml"},
		"log":          map[string]string{"level": "debug", "format": "json"},
	})

	environ := []string{
		"FLYCONF_SETTINGS=" + path,
		"FLYCONF_LOG_LEVEL=warn",
		"FLYCONF_WORKING_DIRECTORY=/from/env",
		"FLYWAY_URL=jdbc:ignored",
	}
	flags := newFlagSet(t, "--output", "json", "-c", "a.toml", "-c", "b.toml")

	cfg, err := Load(environ, flags)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level, "env beats file")
	assert.Equal(t, "json", cfg.Log.Format, "file beats defaults")
	assert.Equal(t, "/from/env", cfg.WorkingDirectory)
	assert.Equal(t, "json", cfg.Output, "flags beat file")
	assert.Equal(t, []string{"a.toml", "b.toml"}, cfg.ConfigFiles)
}

func TestLoad_NilFlags(t *testing.T) {
	cfg, err := Load(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("FLYCONF_OUTPUT", "yaml")

	cfg, err := Load(os.Environ(), nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	_, err := Load([]string{"FLYCONF_OUTPUT=xml"}, nil)
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}
