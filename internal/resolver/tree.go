// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"maps"
	"slices"
	"strings"
)

// Tree is the nested form of a flat canonical mapping. Values are either
// string scalars or child Trees; a path is never both.
type Tree map[string]any

// Unflatten splits every canonical key on "." and builds the nested tree,
// creating intermediate tables as needed.
//
// Keys are inserted in sorted order so the result and any error are the same
// for the same input. A key that would turn a value into a table, or a table
// into a value, yields a [*PathConflictError]; so does an empty segment.
func Unflatten(flat map[string]string) (Tree, error) {
	root := make(Tree, len(flat))

	for _, key := range slices.Sorted(maps.Keys(flat)) {
		if err := root.insert(key, strings.Split(key, keySeparator), flat[key]); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func (t Tree) insert(key string, path []string, value string) error {
	segment := path[0]
	if segment == "" {
		return &PathConflictError{Key: key, Reason: "has an empty segment"}
	}

	if len(path) == 1 {
		if _, isTable := t[segment].(Tree); isTable {
			return &PathConflictError{Key: key, Reason: "is already a table"}
		}
		t[segment] = value
		return nil
	}

	switch node := t[segment].(type) {
	case nil:
		child := make(Tree)
		t[segment] = child
		return child.insert(key, path[1:], value)
	case Tree:
		return node.insert(key, path[1:], value)
	default:
		return &PathConflictError{Key: key, Reason: "extends " + strings.Join(pathPrefix(key, path), keySeparator) + " which is already a value"}
	}
}

// pathPrefix returns the segments of key up to and including path[0].
func pathPrefix(key string, path []string) []string {
	all := strings.Split(key, keySeparator)
	return all[:len(all)-len(path)+1]
}
