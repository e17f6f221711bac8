// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/ctxlog"
	"github.com/vk/bikeshare/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables visible as env.<NAME>. Defaults to
	// os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// fileRoot is the top-level structure of a catalog file.
type fileRoot struct {
	DataDir *string      `hcl:"data_dir,optional"`
	Months  []string     `hcl:"months,optional"`
	Cities  []*cityBlock `hcl:"city,block"`
}

// cityBlock is a single `city "<name>" { ... }` block.
type cityBlock struct {
	Name string `hcl:"name,label"`
	File string `hcl:"file"`
}

// Load parses every .hcl file found under paths and merges them into one
// catalog. Later files override data_dir and months; a city may only be
// defined once across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl catalog files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	evalCtx := newEvalContext(environ())

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := translate(model, &root, file); err != nil {
			return nil, err
		}
	}

	if err := model.Complete(); err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "cities", len(model.Cities), "months", len(model.Months), "data_dir", model.DataDir)
	return model, nil
}

// translate merges one decoded file into the model. A relative data_dir is
// taken relative to the file that declares it.
func translate(model *config.Model, root *fileRoot, file string) error {
	if root.DataDir != nil {
		dir := *root.DataDir
		if dir != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(file), dir)
		}
		model.DataDir = dir
	}
	if len(root.Months) > 0 {
		model.Months = root.Months
	}

	var errs []error
	for _, c := range root.Cities {
		if err := model.AddCity(c.Name, c.File); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}
	return errors.Join(errs...)
}
