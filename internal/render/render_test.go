package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/internal/resolver"
	"github.com/MKhiriev/flyconf/models"
)

func sample() *models.Configuration {
	cfg := models.Defaults()
	cfg.Environments["dev"] = models.Environment{
		URL:            "jdbc:postgresql://localhost/dev",
		Schemas:        []string{"public", "audit"},
		JDBCProperties: map[string]string{"ssl": "true"},
		ConnectRetries: models.Ptr(3),
	}
	cfg.Flyway.Environment = "dev"
	cfg.Flyway.Placeholders = map[string]string{"owner": "app"}
	return cfg
}

// Encoded output is a valid configuration file that loads back to the same model.
func TestEncode_LoadsBack(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, sample(), format))

			path := filepath.Join(t.TempDir(), "flyway."+format)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

			got, err := resolver.LoadFiles([]string{path}, "", logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestEncode_TOMLLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), "TOML"))

	out := buf.String()
	assert.Contains(t, out, "[environments.dev]")
	assert.Contains(t, out, `environment = "dev"`)
	assert.Contains(t, out, "cleanDisabled = true")
	assert.Contains(t, out, "outOfOrder = false", "explicit false is written")
	assert.NotContains(t, out, "tablespace", "unset fields are omitted")
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, sample(), "ini")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "toml, yaml, json")
}

func TestKeyTable(t *testing.T) {
	out := KeyTable([]resolver.Resolution{
		{Key: "environments.default.password", Entry: resolver.Entry{Key: "FLYWAY_PASSWORD", Value: "s3cret"}},
		{Key: "flyway.table", Entry: resolver.Entry{Key: "flyway.table", Value: "history", Source: resolver.SourceCommandLine}},
	})

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "environments.default.password")
	assert.Contains(t, out, "FLYWAY_PASSWORD")
	assert.Contains(t, out, mask)
	assert.NotContains(t, out, "s3cret")
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "command line")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6, "border, header, rule, two rows, border")
}

func TestKeyTable_Empty(t *testing.T) {
	assert.Contains(t, KeyTable(nil), "KEY")
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, mask, displayValue("environments.prod.password", "x"))
	assert.Equal(t, "", displayValue("environments.prod.password", ""))
	assert.Equal(t, "alice", displayValue("environments.prod.user", "alice"))
}
