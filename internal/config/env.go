// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates opts from environment variables using the caarlos0/env
// library. Every `env` tag on [Options] is looked up with [EnvPrefix]
// prepended.
//
// Returns a wrapped error if env.ParseWithOptions fails.
func parseEnv(opts any) error {
	err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
