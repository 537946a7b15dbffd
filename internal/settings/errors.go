package settings

import "errors"

var (
	// ErrEmptyName is returned by [Resolver.Lookup] for an empty name.
	ErrEmptyName = errors.New("settings name is empty")
	// ErrLoad wraps every failure to read or decode a settings file that
	// does exist.
	ErrLoad = errors.New("error loading settings")
)
