package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *Settings
	}{
		{
			name: "nothing set",
			args: nil,
			want: &Settings{},
		},
		{
			name: "all flags",
			args: []string{
				"--log-level", "debug", "--log-format=json", "--settings", "s.json",
				"--working-directory", "/srv", "-o", "yaml", "-c", "a.toml", "--config", "b,c.toml",
			},
			want: &Settings{
				Log:              Log{Level: "debug", Format: "json"},
				SettingsFile:     "s.json",
				WorkingDirectory: "/srv",
				Output:           "yaml",
				ConfigFiles:      []string{"a.toml", "b,c.toml"},
			},
		},
		{
			name: "explicit empty value counts as set",
			args: []string{"--working-directory="},
			want: &Settings{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(newFlagSet(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_UnregisteredFlagsAreSkipped(t *testing.T) {
	fs := pflag.NewFlagSet("keys", pflag.ContinueOnError)
	RegisterGlobalFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "warn"}))

	got, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &Settings{Log: Log{Level: "warn"}}, got)
}

func TestRegisterResolveFlags_ConfigIsNotSplitOnComma(t *testing.T) {
	fs := newFlagSet(t, "-c", "x,y.toml")
	files, err := fs.GetStringArray(FlagConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"x,y.toml"}, files)
}
