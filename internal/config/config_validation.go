// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [Options] can be used to locate
// settings and configs.
func (o *Options) validate() error {
	if o.BaseConfigName == "" || strings.ContainsAny(o.BaseConfigName, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseConfigName, o.BaseConfigName)
	}

	if o.SettingsPath == "" {
		return ErrInvalidSettingsPath
	}

	if o.ConfigsPath == "" {
		return ErrInvalidConfigsPath
	}

	if _, err := zerolog.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, o.LogLevel)
	}

	return nil
}
