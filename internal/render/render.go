// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render writes resolved configuration for humans and tools: the
// merged model as TOML, YAML or JSON, and the canonical key table.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/flyconf/models"
)

// Output formats accepted by [Encode].
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned by [Encode] for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the names accepted by [Encode].
func Formats() []string {
	return []string{FormatTOML, FormatYAML, FormatJSON}
}

// Encode writes cfg to w in the given format. Unset nullable fields are
// omitted, so the output can be fed back to flyconf as a configuration file.
func Encode(w io.Writer, cfg *models.Configuration, format string) error {
	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
	default:
		return fmt.Errorf("%w %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
	}

	return nil
}
