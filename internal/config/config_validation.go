// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/internal/render"
)

// validate checks the merged [Settings] and normalizes the format names to
// lower case.
func (s *Settings) validate() error {
	if _, err := logger.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	s.Log.Format = strings.ToLower(s.Log.Format)
	if !slices.Contains([]string{logger.FormatText, logger.FormatJSON}, s.Log.Format) {
		return fmt.Errorf("%w %q: want text or json", ErrInvalidLogFormat, s.Log.Format)
	}

	s.Output = strings.ToLower(s.Output)
	if !slices.Contains(render.Formats(), s.Output) {
		return fmt.Errorf("%w %q: want one of %s", ErrInvalidOutputFormat, s.Output, strings.Join(render.Formats(), ", "))
	}

	return nil
}
