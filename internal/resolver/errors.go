// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
)

// Error kinds. Every fatal failure of this package is an [*Error] whose
// Kind is one of these, so callers can match with errors.Is.
var (
	// ErrFileLoad indicates a configuration file could not be read.
	ErrFileLoad = errors.New("unable to load config file")
	// ErrBinding indicates configuration data could not be coerced into the
	// configuration model.
	ErrBinding = errors.New("unable to bind configuration")
	// ErrPathConflict indicates two keys that make one path both a value and
	// a table, e.g. flyway.placeholders=x and flyway.placeholders.name=y.
	ErrPathConflict = errors.New("conflicting configuration keys")
)

// Error is the single typed configuration error returned by loaders.
type Error struct {
	// Kind is one of ErrFileLoad or ErrBinding.
	Kind error
	// Source names where the data came from: an absolute file path,
	// "environment" or "command line".
	Source string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Source)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Source, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// PathConflictError reports a key that cannot be placed in the nested tree.
type PathConflictError struct {
	Key    string
	Reason string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("%s: %q %s", ErrPathConflict, e.Key, e.Reason)
}

func (e *PathConflictError) Unwrap() error {
	return ErrPathConflict
}
