package resolver

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/flyconf/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// newCapturingLogger returns a JSON logger writing into the returned buffer.
func newCapturingLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l, err := logger.New(buf, "test", "debug", logger.FormatJSON)
	require.NoError(t, err)
	return l, buf
}

// warnings returns the messages of every warn-level entry in buf.
func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["level"] == "warn" {
			out = append(out, entry)
		}
	}
	require.NoError(t, scanner.Err())
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func currentEnviron() []string {
	return os.Environ()
}
