package config

import "errors"

// Validation errors returned by [Settings.validate] when a merged setting
// holds a value the command cannot use.
var (
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidOutputFormat indicates an output format the renderer lacks.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
