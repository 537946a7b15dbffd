package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	options []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		options: make([]*Options, 0, 4),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, o := range b.options {
		if err := mergo.Merge(opts, o, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	defaults, err := defaultOptions()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error resolving working directory: %w", err))
		return b
	}

	b.options = append(b.options, defaults)
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, envOpts)
	return b
}

// withJSON looks for a JSON file path in the sources collected so far and
// in pending, the last non-empty path winning.
func (b *optionsBuilder) withJSON(pending ...*Options) *optionsBuilder {
	var jsonPath string

	for _, o := range append(b.options, pending...) {
		if o != nil && o.JSONFilePath != "" {
			jsonPath = o.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonOpts, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, jsonOpts)
	return b
}

func (b *optionsBuilder) withOverrides(overrides *Options) *optionsBuilder {
	if overrides == nil {
		return b
	}

	b.options = append(b.options, overrides)
	return b
}
