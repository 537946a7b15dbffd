// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings is an open-ended bag of values handed to a [ConfigFunc].
// No schema is enforced; the keys are a contract between settings files and
// the config producers that read them.
type Settings map[string]any

// Configuration is one bundler configuration. Like [Settings] it is an
// untyped tree of maps, sequences and scalars; merged configurations share
// the same shape.
type Configuration map[string]any

// ConfigFunc produces the configuration registered under a name for the
// given mode and combined settings.
type ConfigFunc func(mode Mode, settings Settings) (Configuration, error)
