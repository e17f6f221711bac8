// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, expression
// evaluation and HCL-to-model translation.
//
// A catalog file looks like:
//
//	data_dir = env.BIKESHARE_DATA
//	months   = ["january", "february", "march", "april", "may", "june"]
//
//	city "chicago" {
//	  file = "chicago.csv"
//	}
//
// Expressions may reference environment variables through `env.<NAME>` and
// call the string functions lower, upper, join and format.
package hcl
