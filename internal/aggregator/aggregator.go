// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package aggregator folds several named configurations into one.
package aggregator

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/get-webpack-config/internal/merge"
	"github.com/MKhiriev/get-webpack-config/models"
)

// ErrNoNames is returned when no names are given.
var ErrNoNames = errors.New("no config names given")

// LoadFunc produces the configuration for one name.
type LoadFunc func(name string) (models.Configuration, error)

// Aggregate starts from an empty configuration and deep-merges the
// configuration of every name into it, in order. Later names win on
// conflicting scalars; nested mappings merge and sequences concatenate.
// The first load error stops the fold.
func Aggregate(names []string, load LoadFunc) (models.Configuration, error) {
	if len(names) == 0 {
		return nil, ErrNoNames
	}

	acc := models.Configuration{}
	for _, name := range names {
		cfg, err := load(name)
		if err != nil {
			return nil, fmt.Errorf("error loading config %q: %w", name, err)
		}

		if err := merge.Into(acc, cfg); err != nil {
			return nil, fmt.Errorf("error merging config %q: %w", name, err)
		}
	}

	return acc, nil
}

// Aggregator exposes the fixed aggregations over a [ConfigLoader].
type Aggregator struct {
	loader ConfigLoader
}

// New returns an Aggregator loading through l.
func New(l ConfigLoader) *Aggregator {
	return &Aggregator{loader: l}
}

// Build aggregates modern configurations. It currently matches [Aggregator.Modern]
// and is kept as its own entry point for build scripts that call it.
func (a *Aggregator) Build(names ...string) (models.Configuration, error) {
	return Aggregate(names, a.bind(models.Modern))
}

// Legacy aggregates legacy configurations.
func (a *Aggregator) Legacy(names ...string) (models.Configuration, error) {
	return Aggregate(names, a.bind(models.Legacy))
}

// Modern aggregates modern configurations.
func (a *Aggregator) Modern(names ...string) (models.Configuration, error) {
	return Aggregate(names, a.bind(models.Modern))
}

func (a *Aggregator) bind(mode models.Mode) LoadFunc {
	return func(name string) (models.Configuration, error) {
		return a.loader.Load(mode, name)
	}
}
