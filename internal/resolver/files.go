// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/models"
)

// parseFunc decodes a whole configuration document into a generic tree.
type parseFunc func(data []byte) (map[string]any, error)

// parsers is keyed by lower-case file extension. Unknown extensions are read
// as JSON.
var parsers = map[string]parseFunc{
	".toml": parseTOML,
	".yaml": parseYAML,
	".yml":  parseYAML,
	".json": parseJSON,
}

func parseTOML(data []byte) (map[string]any, error) {
	tree := make(map[string]any)
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
		return nil, fmt.Errorf("error decoding toml: %w", err)
	}
	return tree, nil
}

func parseYAML(data []byte) (map[string]any, error) {
	tree := make(map[string]any)
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}
	return tree, nil
}

func parseJSON(data []byte) (map[string]any, error) {
	tree := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return tree, nil
	}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}
	return tree, nil
}

func parserFor(path string) parseFunc {
	if parse, ok := parsers[strings.ToLower(filepath.Ext(path))]; ok {
		return parse
	}
	return parseJSON
}

// FileLoader reads configuration files into [models.Configuration] values.
type FileLoader struct {
	fs  FileSystem
	log *logger.Logger
}

// NewFileLoader returns a FileLoader reading through fsys. A nil fsys means
// the local disk.
func NewFileLoader(fsys FileSystem, log *logger.Logger) *FileLoader {
	if fsys == nil {
		fsys = osFileSystem{}
	}
	return &FileLoader{fs: fsys, log: log}
}

// LoadFiles loads every file in order and folds the results over
// [models.Defaults]; later files override earlier ones.
//
// Loading stops at the first failing file and its error is returned; nothing
// merged before it is returned.
func (l *FileLoader) LoadFiles(paths []string, workingDirectory string) (*models.Configuration, error) {
	result := models.Defaults()

	for _, path := range paths {
		cfg, err := l.LoadFile(path, workingDirectory)
		if err != nil {
			return nil, err
		}

		result, err = models.Merge(result, cfg)
		if err != nil {
			return nil, &Error{Kind: ErrBinding, Source: absolute(path), Err: err}
		}
	}

	return result, nil
}

// LoadFile loads and binds a single file.
//
// A relative path is first tried against workingDirectory; the combined path
// is used only if it exists. Read failures are [ErrFileLoad] errors, parse
// and bind failures are [ErrBinding] errors, both carrying the absolute path.
func (l *FileLoader) LoadFile(path, workingDirectory string) (*models.Configuration, error) {
	resolved := l.resolvePath(path, workingDirectory)
	abs := absolute(resolved)

	l.log.Debug().Str("path", abs).Msg("loading config file")

	data, err := l.fs.ReadFile(resolved)
	if err != nil {
		return nil, &Error{Kind: ErrFileLoad, Source: abs, Err: err}
	}

	tree, err := parserFor(resolved)(data)
	if err != nil {
		return nil, &Error{Kind: ErrBinding, Source: abs, Err: err}
	}

	return Bind(tree, abs)
}

func (l *FileLoader) resolvePath(path, workingDirectory string) string {
	if filepath.IsAbs(path) || workingDirectory == "" {
		return path
	}

	candidate := filepath.Join(workingDirectory, path)
	if _, err := l.fs.Stat(candidate); err == nil {
		return candidate
	}

	return path
}

// absolute returns the absolute form of path, or path itself when the
// working directory of the process cannot be determined.
func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// LoadFiles loads configuration files from the local disk. See
// [FileLoader.LoadFiles].
func LoadFiles(paths []string, workingDirectory string, log *logger.Logger) (*models.Configuration, error) {
	return NewFileLoader(nil, log).LoadFiles(paths, workingDirectory)
}
