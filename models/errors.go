// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownEnvironment is returned by [Configuration.Validate] when
// flyway.environment names an environment that no source defined.
var ErrUnknownEnvironment = errors.New("unknown environment")

// UnknownEnvironmentError carries the environment name that failed to resolve.
type UnknownEnvironmentError struct {
	Name string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("%s %q: no environments.%s section is configured", ErrUnknownEnvironment, e.Name, e.Name)
}

func (e *UnknownEnvironmentError) Unwrap() error {
	return ErrUnknownEnvironment
}
