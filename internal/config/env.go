// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the FLYCONF_* variables of an environment
// snapshot using the caarlos0/env library. Struct fields are mapped via their
// `env` and `envPrefix` tags defined on [Settings].
//
// The snapshot is passed in rather than read from the process so callers
// decide when the environment is captured.
func parseEnv(cfg any, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
