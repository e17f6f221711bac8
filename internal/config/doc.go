// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic city catalog for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for which cities exist,
// where their trip files live and which month labels the filters accept.
// Concrete loaders, such as for HCL and YAML, are provided in separate
// packages. When no catalog file is given, Default() supplies the built-in
// three-city catalog.
package config
