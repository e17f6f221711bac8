// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model. The returned model has passed Complete.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// DefaultLoader returns the built-in catalog and ignores its paths. It is used
// when no catalog file is configured.
type DefaultLoader struct{}

// Load implements Loader.
func (DefaultLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	return Default(), nil
}
