// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader produces named bundler configurations.
//
// A name resolves to a producer in one of two ways, checked in order:
//  1. a Go [models.ConfigFunc] added to the [Registry];
//  2. a template file <configs-dir>/<name>.config.<ext> (ext is yaml, yml,
//     json or toml), rendered with text/template and decoded by extension.
//
// Unlike settings, configs are mandatory: every failure is returned to the
// caller.
package loader

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/get-webpack-config/internal/codec"
	"github.com/MKhiriev/get-webpack-config/internal/logger"
	"github.com/MKhiriev/get-webpack-config/internal/settings"
	"github.com/MKhiriev/get-webpack-config/models"
)

// fileSuffix is appended to a name to form the config template stem.
const fileSuffix = ".config"

// Loader resolves names to configurations.
type Loader struct {
	registry *Registry
	settings SettingsCombiner
	options  settings.OptionsFunc
	log      *logger.Logger
}

// NewLoader creates a Loader. A nil registry is replaced by an empty one and
// a nil log discards output.
func NewLoader(registry *Registry, combiner SettingsCombiner, options settings.OptionsFunc, log *logger.Logger) *Loader {
	if registry == nil {
		registry = NewRegistry()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		registry: registry,
		settings: combiner,
		options:  options,
		log:      log.WithComponent("loader"),
	}
}

// Load produces the configuration for name in the given mode. The producer
// receives the combined settings for name.
//
// A nil configuration returned by a producer is turned into an empty one;
// the shape is otherwise not checked.
func (l *Loader) Load(mode models.Mode, name string) (models.Configuration, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	produce, source, err := l.producer(name)
	if err != nil {
		return nil, err
	}

	cfg, err := produce(mode, l.settings.Combine(name))
	if err != nil {
		return nil, fmt.Errorf("error producing %s config %q from %s: %w", mode, name, source, err)
	}
	if cfg == nil {
		cfg = models.Configuration{}
	}

	l.log.Debug().Str("name", name).Stringer("mode", mode).Str("source", source).
		Int("keys", len(cfg)).Msg("config loaded")

	return cfg, nil
}

// Legacy is Load bound to [models.Legacy].
func (l *Loader) Legacy(name string) (models.Configuration, error) {
	return l.Load(models.Legacy, name)
}

// Modern is Load bound to [models.Modern].
func (l *Loader) Modern(name string) (models.Configuration, error) {
	return l.Load(models.Modern, name)
}

// Available lists the names Load can resolve: registered names plus
// templates found in the configs directory, sorted and without duplicates.
// A missing configs directory only yields the registered names.
func (l *Loader) Available() ([]string, error) {
	names := l.registry.Names()

	opts, err := l.options()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(opts.ConfigsPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error listing configs directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := templateName(e.Name()); ok {
			names = append(names, name)
		}
	}

	slices.Sort(names)
	return slices.Compact(names), nil
}

// producer returns the ConfigFunc for name and a description of where it
// came from.
func (l *Loader) producer(name string) (models.ConfigFunc, string, error) {
	if fn, ok := l.registry.Lookup(name); ok {
		return fn, "registry", nil
	}

	opts, err := l.options()
	if err != nil {
		return nil, "", fmt.Errorf("error resolving configs path: %w", err)
	}

	path, found, err := codec.Locate(opts.ConfigsPath, name+fileSuffix)
	if err != nil {
		return nil, "", fmt.Errorf("error locating config %q: %w", name, err)
	}
	if !found {
		return nil, "", fmt.Errorf("%w: %q is not registered and %s has no %s%s.{%s}",
			ErrConfigNotFound, name, opts.ConfigsPath, name, fileSuffix, extList())
	}

	return templateFactory(name, path), path, nil
}

func templateName(file string) (string, bool) {
	for _, ext := range codec.Extensions {
		if stem, ok := strings.CutSuffix(file, fileSuffix+ext); ok && stem != "" {
			return stem, true
		}
	}

	return "", false
}

func extList() string {
	exts := make([]string, len(codec.Extensions))
	for i, ext := range codec.Extensions {
		exts[i] = strings.TrimPrefix(ext, ".")
	}

	return strings.Join(exts, ",")
}
