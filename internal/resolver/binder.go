// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"

	"github.com/MKhiriev/flyconf/models"
)

var stringSliceType = reflect.TypeOf([]string(nil))

// formatScalar renders a bool, integer, float or string the way it would be
// written in a configuration file.
func formatScalar(data any) (string, bool) {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// emptyStringToNil leaves nullable fields unset when the value is "", so an
// empty FLYWAY_CLEAN_DISABLED= does not override a default with false.
func emptyStringToNil(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to.Kind() == reflect.Pointer && reflect.ValueOf(data).String() == "" {
		return nil, nil
	}
	return data, nil
}

// scalarToStringSlice wraps a bare scalar into a one-element []string. The
// value is never split: "a,b" binds as ["a,b"]. An empty string binds as no
// list at all. Lists coming from structured files are left for the decoder
// to copy element by element.
func scalarToStringSlice(from, to reflect.Type, data any) (any, error) {
	if to != stringSliceType {
		return data, nil
	}

	s, ok := formatScalar(data)
	switch {
	case !ok:
		return data, nil
	case from.Kind() == reflect.String && s == "":
		return []string(nil), nil
	default:
		return []string{s}, nil
	}
}

// scalarToString accepts booleans and numbers for string fields, written in
// their canonical form: true binds as "true", 2 as "2".
func scalarToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() == reflect.String {
		return data, nil
	}

	if s, ok := formatScalar(data); ok {
		return s, nil
	}
	return data, nil
}

// floatToInt accepts whole floats, as JSON decodes every number, for integer
// fields and rejects fractions instead of truncating them.
func floatToInt(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return int64(f), nil
}

// Bind decodes a nested tree into a fresh [models.Configuration].
//
// Keys the model does not declare are ignored. Strings are parsed into the
// declared bool and integer types, booleans and numbers are accepted for
// string fields, and an empty string leaves a nullable field unset. Every
// other type mismatch fails: a fractional number for an integer, a number
// for a bool, a table for a scalar. On failure Bind returns an [*Error] of
// kind [ErrBinding] naming source.
func Bind(tree map[string]any, source string) (*models.Configuration, error) {
	cfg := &models.Configuration{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(scalarToStringSlice),
			mapstructure.DecodeHookFuncType(scalarToString),
			mapstructure.DecodeHookFuncType(floatToInt),
			mapstructure.StringToBasicTypeHookFunc(),
			// Last: a nil result ends the chain.
			mapstructure.DecodeHookFuncType(emptyStringToNil),
		),
		Result: cfg,
	})
	if err != nil {
		return nil, &Error{Kind: ErrBinding, Source: source, Err: err}
	}

	if err := decoder.Decode(tree); err != nil {
		return nil, &Error{Kind: ErrBinding, Source: source, Err: err}
	}

	return cfg, nil
}

// bindFlat unflattens an arbitrated mapping and binds it.
func bindFlat(flat map[string]string, source string) (*models.Configuration, error) {
	tree, err := Unflatten(flat)
	if err != nil {
		return nil, &Error{Kind: ErrBinding, Source: source, Err: err}
	}

	return Bind(tree, source)
}
