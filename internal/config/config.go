// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvPrefix is prepended to every env tag of [Options].
	EnvPrefix = "GET_WEBPACK_CONFIG_"

	// DefaultBaseConfigName is the settings name every named settings
	// object is layered on top of.
	DefaultBaseConfigName = "app"
	// DefaultSettingsDir is the settings directory name, relative to the
	// working directory.
	DefaultSettingsDir = "webpack-settings"
	// DefaultConfigsDir is the configs directory name, relative to the
	// working directory.
	DefaultConfigsDir = "webpack-configs"
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Options is the resolved set of process-level options.
//
// Struct tags:
//   - env: variable name, looked up with the [EnvPrefix] prefix (caarlos0/env).
//   - json: key inside the optional JSON options file.
type Options struct {
	// BaseConfigName names the settings every combined settings object
	// starts from.
	// Env: GET_WEBPACK_CONFIG_BASE_CONFIG_NAME
	BaseConfigName string `env:"BASE_CONFIG_NAME" json:"base_config_name"`

	// SettingsPath is the directory holding <name>.settings.<ext> files.
	// Env: GET_WEBPACK_CONFIG_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH" json:"settings_path"`

	// ConfigsPath is the directory holding <name>.config.<ext> templates.
	// Env: GET_WEBPACK_CONFIG_CONFIGS_PATH
	ConfigsPath string `env:"CONFIGS_PATH" json:"configs_path"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: GET_WEBPACK_CONFIG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONFilePath is the optional path to a JSON options file. When
	// non-empty, the file is parsed and merged on top of the defaults and
	// the environment.
	// Env: GET_WEBPACK_CONFIG_FILE
	JSONFilePath string `env:"FILE" json:"-"`
}

// GetOptions loads the options from defaults, the environment and the
// optional JSON file.
func GetOptions() (*Options, error) {
	return Load(nil)
}

// Load is like [GetOptions] but applies overrides last. Zero fields of
// overrides are ignored, so a partially filled value only replaces what it
// sets.
func Load(overrides *Options) (*Options, error) {
	return newOptionsBuilder().
		withDefaults().
		withEnv().
		withJSON(overrides).
		withOverrides(overrides).
		build()
}

func defaultOptions() (*Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return &Options{
		BaseConfigName: DefaultBaseConfigName,
		SettingsPath:   filepath.Join(cwd, DefaultSettingsDir),
		ConfigsPath:    filepath.Join(cwd, DefaultConfigsDir),
		LogLevel:       DefaultLogLevel,
	}, nil
}
