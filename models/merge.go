// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeOptions make a later source win for every field it actually sets:
// non-nil pointers and non-empty strings, slices and map entries. A nil
// pointer or an empty value never erases what an earlier source set.
var mergeOptions = []func(*mergo.Config){
	mergo.WithOverride,
	mergo.WithoutDereference,
}

// Merge folds overrides onto base from left to right and returns the result
// as a new [Configuration]. Neither base nor any override is modified.
//
// Environments are merged per name and then field by field, so a later file
// that only sets environments.dev.user keeps an earlier environments.dev.url.
// Nil overrides are skipped.
func Merge(base *Configuration, overrides ...*Configuration) (*Configuration, error) {
	result := base.Clone()
	if result == nil {
		result = &Configuration{}
	}

	for _, override := range overrides {
		if override == nil {
			continue
		}

		if err := result.merge(override.Clone()); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *Configuration) merge(other *Configuration) error {
	if err := mergo.Merge(&c.Flyway, other.Flyway, mergeOptions...); err != nil {
		return fmt.Errorf("error merging flyway settings: %w", err)
	}

	if len(other.Environments) == 0 {
		return nil
	}

	if c.Environments == nil {
		c.Environments = make(map[string]Environment, len(other.Environments))
	}

	for name, env := range other.Environments {
		current, ok := c.Environments[name]
		if !ok {
			c.Environments[name] = env
			continue
		}

		if err := mergo.Merge(&current, env, mergeOptions...); err != nil {
			return fmt.Errorf("error merging environment %q: %w", name, err)
		}
		c.Environments[name] = current
	}

	return nil
}
