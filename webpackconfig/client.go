// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webpackconfig

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/get-webpack-config/internal/aggregator"
	"github.com/MKhiriev/get-webpack-config/internal/config"
	"github.com/MKhiriev/get-webpack-config/internal/loader"
	"github.com/MKhiriev/get-webpack-config/internal/logger"
	"github.com/MKhiriev/get-webpack-config/internal/settings"
	"github.com/MKhiriev/get-webpack-config/models"
)

type (
	// Options are the resolved process-level options.
	Options = config.Options
	// Registry maps names to configuration producers.
	Registry = loader.Registry
	// ResolvedSettings is the inspectable outcome of a settings lookup.
	ResolvedSettings = settings.Resolved
)

// NewRegistry returns an empty [Registry] for use with [WithRegistry].
func NewRegistry() *Registry {
	return loader.NewRegistry()
}

// Client resolves settings and configurations.
type Client struct {
	overrides  *config.Options
	registry   *loader.Registry
	log        *logger.Logger
	settings   *settings.Resolver
	loader     *loader.Loader
	aggregator *aggregator.Aggregator
}

// Option customizes a [Client].
type Option func(*Client)

// WithBaseConfigName sets the base settings name, taking precedence over the
// environment.
func WithBaseConfigName(name string) Option {
	return func(c *Client) { c.overrides.BaseConfigName = name }
}

// WithSettingsPath sets the settings directory, taking precedence over the
// environment.
func WithSettingsPath(dir string) Option {
	return func(c *Client) { c.overrides.SettingsPath = dir }
}

// WithConfigsPath sets the configs directory, taking precedence over the
// environment.
func WithConfigsPath(dir string) Option {
	return func(c *Client) { c.overrides.ConfigsPath = dir }
}

// WithOptionsFile reads further options from a JSON file.
func WithOptionsFile(path string) Option {
	return func(c *Client) { c.overrides.JSONFilePath = path }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = &logger.Logger{Logger: l} }
}

// WithRegistry uses r instead of a private registry.
func WithRegistry(r *Registry) Option {
	return func(c *Client) { c.registry = r }
}

// New returns a Client. Options are re-read from the environment on every
// call; the values given here take precedence over it.
func New(opts ...Option) *Client {
	c := &Client{
		overrides: &Options{},
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = loader.NewRegistry()
	}

	c.settings = settings.NewResolver(c.options, c.log)
	c.loader = loader.NewLoader(c.registry, c.settings, c.options, c.log)
	c.aggregator = aggregator.New(c.loader)

	return c
}

func (c *Client) options() (*Options, error) {
	overrides := *c.overrides
	return config.Load(&overrides)
}

// Options returns the options the next call would use.
func (c *Client) Options() (*Options, error) {
	return c.options()
}

// Register adds a configuration producer for name to the client's registry.
func (c *Client) Register(name string, fn models.ConfigFunc) {
	c.registry.Register(name, fn)
}

// Settings returns the settings stored for name alone, or empty settings
// when there are none. It never fails.
func (c *Client) Settings(name string) models.Settings {
	return c.settings.Resolve(name)
}

// LookupSettings is like Settings but reports whether a file was found and
// why it could not be loaded.
func (c *Client) LookupSettings(name string) (ResolvedSettings, error) {
	return c.settings.Lookup(name)
}

// CombinedSettings returns the base settings overlaid one level deep with
// the settings for name.
func (c *Client) CombinedSettings(name string) models.Settings {
	return c.settings.Combine(name)
}

// Config returns the configuration for name in the given mode.
func (c *Client) Config(mode models.Mode, name string) (models.Configuration, error) {
	return c.loader.Load(mode, name)
}

// LegacyConfig returns the legacy configuration for name.
func (c *Client) LegacyConfig(name string) (models.Configuration, error) {
	return c.loader.Legacy(name)
}

// ModernConfig returns the modern configuration for name.
func (c *Client) ModernConfig(name string) (models.Configuration, error) {
	return c.loader.Modern(name)
}

// BuildConfigs deep-merges the modern configurations of names, in order.
// It currently matches ModernConfigs.
func (c *Client) BuildConfigs(names ...string) (models.Configuration, error) {
	return c.aggregator.Build(names...)
}

// LegacyConfigs deep-merges the legacy configurations of names, in order.
func (c *Client) LegacyConfigs(names ...string) (models.Configuration, error) {
	return c.aggregator.Legacy(names...)
}

// ModernConfigs deep-merges the modern configurations of names, in order.
func (c *Client) ModernConfigs(names ...string) (models.Configuration, error) {
	return c.aggregator.Modern(names...)
}

// Available lists the configuration names the client can load.
func (c *Client) Available() ([]string, error) {
	return c.loader.Available()
}
