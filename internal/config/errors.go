package config

import "errors"

// Validation errors returned by [Options.validate] when the merged options
// cannot be used.
var (
	// ErrInvalidBaseConfigName indicates an empty base name or one that
	// contains a path separator.
	ErrInvalidBaseConfigName = errors.New("invalid base config name")
	// ErrInvalidSettingsPath indicates an empty settings directory.
	ErrInvalidSettingsPath = errors.New("invalid settings path")
	// ErrInvalidConfigsPath indicates an empty configs directory.
	ErrInvalidConfigsPath = errors.New("invalid configs path")
	// ErrInvalidLogLevel indicates a level name zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
