// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Mode selects which variant of a named configuration a [ConfigFunc]
// produces.
type Mode string

const (
	// Legacy asks for a configuration targeting older browsers.
	Legacy Mode = "legacy"
	// Modern asks for a configuration targeting evergreen browsers.
	Modern Mode = "modern"
)

// ErrInvalidMode is returned for any mode other than [Legacy] or [Modern].
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode converts s into a [Mode].
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}

	return m, nil
}

// Validate returns [ErrInvalidMode] unless m is one of the known modes.
func (m Mode) Validate() error {
	switch m {
	case Legacy, Modern:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, string(m), Legacy, Modern)
	}
}

func (m Mode) String() string {
	return string(m)
}
