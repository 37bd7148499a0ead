// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/models"
)

// Resolver assembles one configuration from every surface. Sources are
// applied in the order the With* methods are called, later ones winning;
// the conventional order is files, environment, command line.
//
// The first failing source is remembered and returned by [Resolver.Build];
// sources added after it are not loaded.
type Resolver struct {
	log     *logger.Logger
	files   *FileLoader
	configs []*models.Configuration
	err     error
}

// Option customizes a [Resolver].
type Option func(*Resolver)

// WithFileSystem makes the resolver read configuration files through fsys.
func WithFileSystem(fsys FileSystem) Option {
	return func(r *Resolver) {
		r.files = NewFileLoader(fsys, r.log.GetChildLogger("files"))
	}
}

// New returns an empty Resolver logging to log.
func New(log *logger.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		log:     log,
		configs: make([]*models.Configuration, 0, 3),
	}
	r.files = NewFileLoader(nil, log.GetChildLogger("files"))

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithFiles adds the merged result of the given configuration files.
func (r *Resolver) WithFiles(paths []string, workingDirectory string) *Resolver {
	if r.err != nil || len(paths) == 0 {
		return r
	}

	cfg, err := r.files.LoadFiles(paths, workingDirectory)
	return r.add(cfg, err)
}

// WithEnvironment adds the configuration found in an os.Environ() snapshot.
func (r *Resolver) WithEnvironment(environ []string) *Resolver {
	if r.err != nil {
		return r
	}

	cfg, err := LoadFromEnvironment(environ, r.log.GetChildLogger("environment"))
	return r.add(cfg, err)
}

// WithCommandLine adds dotted command-line overrides.
func (r *Resolver) WithCommandLine(args map[string]string) *Resolver {
	if r.err != nil || len(args) == 0 {
		return r
	}

	cfg, err := LoadFromCommandLine(args, r.log.GetChildLogger("command-line"))
	return r.add(cfg, err)
}

func (r *Resolver) add(cfg *models.Configuration, err error) *Resolver {
	if err != nil {
		r.err = errors.Join(r.err, err)
		return r
	}

	r.configs = append(r.configs, cfg)
	return r
}

// Build folds every added source over [models.Defaults] and validates the
// result.
func (r *Resolver) Build() (*models.Configuration, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error occurred during resolving configuration: %w", r.err)
	}

	cfg, err := models.Merge(models.Defaults(), r.configs...)
	if err != nil {
		return nil, fmt.Errorf("error merging configuration sources: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
