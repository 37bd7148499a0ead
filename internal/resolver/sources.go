// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"maps"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/models"
)

// EnvironmentEntries turns an environment snapshot in os.Environ() form
// ("KEY=value") into entries sorted by key, so every resolution of the same
// snapshot visits keys in the same order.
func EnvironmentEntries(environ []string) []Entry {
	return entriesFrom(env.ToMap(environ), SourceEnvironment)
}

// CommandLineEntries turns dotted command-line overrides into entries sorted
// by key.
func CommandLineEntries(args map[string]string) []Entry {
	return entriesFrom(args, SourceCommandLine)
}

func entriesFrom(values map[string]string, source Source) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		entries = append(entries, Entry{Key: key, Value: values[key], Source: source})
	}
	return entries
}

// LoadFromEnvironment resolves an environment snapshot (as returned by
// os.Environ) into a configuration model. Collisions between old and new
// variable names are logged as warnings on log.
func LoadFromEnvironment(environ []string, log *logger.Logger) (*models.Configuration, error) {
	flat := Arbitrate(EnvironmentEntries(environ), log)
	return bindFlat(flat, SourceEnvironment.String())
}

// LoadFromCommandLine resolves dotted key/value overrides, as produced by the
// command-line parser, into a configuration model.
func LoadFromCommandLine(args map[string]string, log *logger.Logger) (*models.Configuration, error) {
	flat := Arbitrate(CommandLineEntries(args), log)
	return bindFlat(flat, SourceCommandLine.String())
}

// Keys explains the environment snapshot and the command-line overrides
// together. Each source is arbitrated on its own; a command-line key then
// replaces the environment winner for the same canonical key.
func Keys(environ []string, args map[string]string, log *logger.Logger) []Resolution {
	winners := make(map[string]Resolution)
	for _, r := range Explain(EnvironmentEntries(environ), log) {
		winners[r.Key] = r
	}
	for _, r := range Explain(CommandLineEntries(args), log) {
		winners[r.Key] = r
	}

	resolutions := make([]Resolution, 0, len(winners))
	for _, key := range slices.Sorted(maps.Keys(winners)) {
		resolutions = append(resolutions, winners[key])
	}
	return resolutions
}
