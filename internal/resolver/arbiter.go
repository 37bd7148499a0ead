// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"maps"
	"slices"

	"github.com/MKhiriev/flyconf/internal/logger"
)

// collisionMessage is logged once per pair of raw keys that normalize to the
// same canonical key: noun, kept key, noun, dropped key, dropped key.
const collisionMessage = "using both new %s %s and old %s %s; please remove %s"

// Resolution is one canonical key together with the raw entry that won it.
type Resolution struct {
	Key   string
	Entry Entry
}

// Explain normalizes entries, arbitrates collisions and returns the winners
// sorted by canonical key. Entries are visited in the given order; see
// [Arbitrate] for the tie-break.
func Explain(entries []Entry, log *logger.Logger) []Resolution {
	candidates := arbitrate(entries, log)

	resolutions := make([]Resolution, 0, len(candidates))
	for _, key := range slices.Sorted(maps.Keys(candidates)) {
		resolutions = append(resolutions, Resolution{Key: key, Entry: candidates[key]})
	}

	return resolutions
}

// Arbitrate normalizes entries with [NormalizeKey] and collapses them into a
// canonical key -> value map.
//
// When two raw keys land on the same canonical key, a legacy FLYWAY_ entry
// already in the map loses to the newcomer; in every other case the entry
// seen first is kept. Each collision logs exactly one warning naming both
// raw keys.
func Arbitrate(entries []Entry, log *logger.Logger) map[string]string {
	candidates := arbitrate(entries, log)

	flat := make(map[string]string, len(candidates))
	for key, entry := range candidates {
		flat[key] = entry.Value
	}

	return flat
}

func arbitrate(entries []Entry, log *logger.Logger) map[string]Entry {
	candidates := make(map[string]Entry, len(entries))

	for _, entry := range entries {
		key, ok := NormalizeKey(entry)
		if !ok {
			continue
		}

		incumbent, exists := candidates[key]
		if !exists {
			candidates[key] = entry
			continue
		}

		kept, dropped := incumbent, entry
		if incumbent.IsLegacy() {
			kept, dropped = entry, incumbent
		}
		candidates[key] = kept

		log.Warn().
			Str("key", key).
			Str("kept", kept.Key).
			Str("dropped", dropped.Key).
			Msgf(collisionMessage, kept.Source.noun(), kept.Key, dropped.Source.noun(), dropped.Key, dropped.Key)
	}

	return candidates
}
