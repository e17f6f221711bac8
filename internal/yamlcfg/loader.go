// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlcfg provides a YAML implementation of the config.Loader
// interface. It accepts the same catalog as the HCL loader:
//
//	data_dir: ${BIKESHARE_DATA}
//	months: [january, february, march, april, may, june]
//	cities:
//	  - name: chicago
//	    file: chicago.csv
//
// `${NAME}` references in data_dir and file are expanded from the environment.
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/ctxlog"
	"github.com/vk/bikeshare/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader reads catalogs from .yml and .yaml files.
type Loader struct {
	// Getenv resolves ${NAME} references. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

type fileRoot struct {
	DataDir *string    `yaml:"data_dir"`
	Months  []string   `yaml:"months"`
	Cities  []cityNode `yaml:"cities"`
}

type cityNode struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Load parses every YAML file under paths and merges them like the HCL
// loader does.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".yml", ".yaml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yml or .yaml catalog files found in %v", paths)
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	model := &config.Model{}
	for _, file := range files {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		if root.DataDir != nil {
			dir := os.Expand(*root.DataDir, getenv)
			if dir != "" && !filepath.IsAbs(dir) {
				dir = filepath.Join(filepath.Dir(file), dir)
			}
			model.DataDir = dir
		}
		if len(root.Months) > 0 {
			model.Months = root.Months
		}
		for _, c := range root.Cities {
			if err := model.AddCity(c.Name, os.Expand(c.File, getenv)); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}

	if err := model.Complete(); err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "cities", len(model.Cities), "data_dir", model.DataDir)
	return model, nil
}

func decodeFile(file string) (*fileRoot, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &root, nil
}
