// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/MKhiriev/get-webpack-config/internal/codec"
	"github.com/MKhiriev/get-webpack-config/internal/config"
	"github.com/MKhiriev/get-webpack-config/internal/logger"
	"github.com/MKhiriev/get-webpack-config/internal/merge"
	"github.com/MKhiriev/get-webpack-config/models"
)

// fileSuffix is appended to a name to form the settings file stem.
const fileSuffix = ".settings"

// OptionsFunc returns the options in effect for one call. It is invoked on
// every lookup so environment changes are picked up.
type OptionsFunc func() (*config.Options, error)

// Resolved is the outcome of a settings lookup.
type Resolved struct {
	// Name is the settings name that was looked up.
	Name string
	// Path is the file the values were read from; empty when no file
	// exists for Name.
	Path string
	// Values holds the decoded settings. Never nil.
	Values models.Settings
}

// Present reports whether a settings file was found.
func (r Resolved) Present() bool {
	return r.Path != ""
}

// Resolver loads and combines settings.
type Resolver struct {
	options OptionsFunc
	log     *logger.Logger
}

// NewResolver creates a Resolver. A nil log discards output.
func NewResolver(options OptionsFunc, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		options: options,
		log:     log.WithComponent("settings"),
	}
}

// Lookup locates and decodes the settings for name.
//
// A missing file is not an error: the result has an empty Path and empty
// Values. A file that exists but cannot be read or decoded yields an error
// wrapping [ErrLoad] together with the path that failed.
func (r *Resolver) Lookup(name string) (Resolved, error) {
	res := Resolved{Name: name, Values: models.Settings{}}
	if name == "" {
		return res, ErrEmptyName
	}

	opts, err := r.options()
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	path, found, err := codec.Locate(opts.SettingsPath, name+fileSuffix)
	if err != nil {
		return res, fmt.Errorf("%w: %q: %w", ErrLoad, name, err)
	}
	if !found {
		return res, nil
	}

	res.Path = path
	values, err := codec.DecodeFile(path)
	if err != nil {
		return res, fmt.Errorf("%w: %q: %w", ErrLoad, name, err)
	}

	res.Values = values
	return res, nil
}

// Resolve returns the settings for name, or empty settings when there are
// none or they cannot be loaded. Load failures are logged, not returned.
func (r *Resolver) Resolve(name string) models.Settings {
	res, err := r.Lookup(name)
	if err != nil {
		r.log.Warn().Err(err).Str("name", name).Str("path", res.Path).
			Msg("ignoring settings that could not be loaded")
		return models.Settings{}
	}

	if !res.Present() {
		r.log.Debug().Str("name", name).Msg("no settings file")
		return res.Values
	}

	r.log.Debug().Str("name", name).Str("path", res.Path).Int("keys", len(res.Values)).
		Msg("settings loaded")
	return res.Values
}

// Combine returns the base settings overlaid with the settings for name.
//
// The overlay is one level deep: a key set by the named settings replaces
// the base value entirely, even when both values are mappings. This differs
// from the deep merge applied to configurations.
func (r *Resolver) Combine(name string) models.Settings {
	base := config.DefaultBaseConfigName
	if opts, err := r.options(); err == nil {
		base = opts.BaseConfigName
	} else {
		r.log.Warn().Err(err).Msg("using default base settings name")
	}

	return merge.Shallow(r.Resolve(base), r.Resolve(name))
}
