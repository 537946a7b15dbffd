package loader

import "errors"

var (
	// ErrEmptyName is returned when a config is requested for an empty name.
	ErrEmptyName = errors.New("config name is empty")
	// ErrConfigNotFound is returned when a name has neither a registered
	// factory nor a template file in the configs directory.
	ErrConfigNotFound = errors.New("config not found")
	// ErrTemplate wraps template parse and execution failures.
	ErrTemplate = errors.New("config template error")
)
