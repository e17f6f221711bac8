// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMonths are the month labels accepted by the month filter, in
// calendar order starting at January.
var DefaultMonths = []string{"january", "february", "march", "april", "may", "june"}

// Model is the unified, format-agnostic representation of the city catalog.
type Model struct {
	// DataDir is the directory relative city files are resolved against.
	DataDir string
	// Months are lower-cased month labels; label i selects calendar month i+1.
	Months []string `validate:"min=1,max=12,unique,dive,required"`
	// Cities is keyed by lower-cased city name.
	Cities map[string]*City `validate:"required,min=1,dive,required"`
}

// City maps a city name to the CSV file holding its trips.
type City struct {
	Name string `validate:"required"`
	File string `validate:"required"`
}

// Default returns the built-in catalog of the three published data sets.
func Default() *Model {
	m := &Model{
		DataDir: ".",
		Months:  slices.Clone(DefaultMonths),
		Cities: map[string]*City{
			"chicago":       {Name: "chicago", File: "chicago.csv"},
			"new york city": {Name: "new york city", File: "new_york_city.csv"},
			"washington":    {Name: "washington", File: "washington.csv"},
		},
	}
	return m
}

// Complete normalizes names to lower case, fills defaults for omitted
// settings and validates the result.
func (m *Model) Complete() error {
	if m.DataDir == "" {
		m.DataDir = "."
	}
	if len(m.Months) == 0 {
		m.Months = slices.Clone(DefaultMonths)
	}
	for i, label := range m.Months {
		m.Months[i] = strings.ToLower(strings.TrimSpace(label))
	}

	cities := make(map[string]*City, len(m.Cities))
	for key, c := range m.Cities {
		if c == nil {
			return fmt.Errorf("city %q has no definition", key)
		}
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			name = strings.ToLower(strings.TrimSpace(key))
		}
		if _, dup := cities[name]; dup {
			return fmt.Errorf("city %q is defined more than once", name)
		}
		cities[name] = &City{Name: name, File: c.File}
	}
	m.Cities = cities

	if err := validator.New().Struct(m); err != nil {
		return fmt.Errorf("invalid city catalog: %w", err)
	}
	return nil
}

// AddCity registers a city, rejecting duplicate names.
func (m *Model) AddCity(name, file string) error {
	if m.Cities == nil {
		m.Cities = make(map[string]*City)
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if _, dup := m.Cities[key]; dup {
		return fmt.Errorf("city %q is defined more than once", key)
	}
	m.Cities[key] = &City{Name: key, File: file}
	return nil
}

// CityNames returns the catalog's city names in sorted order.
func (m *Model) CityNames() []string {
	names := make([]string, 0, len(m.Cities))
	for name := range m.Cities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// City looks up a city by name in any letter case.
func (m *Model) City(name string) (*City, bool) {
	c, ok := m.Cities[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Resolve returns the path of the city's trip file.
func (m *Model) Resolve(c *City) string {
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(m.DataDir, c.File)
}

// MonthIndex returns the 1-based calendar month for a label, or 0 when the
// label is unknown.
func (m *Model) MonthIndex(label string) int {
	i := slices.Index(m.Months, strings.ToLower(strings.TrimSpace(label)))
	return i + 1
}

// MonthLabel returns the display name of a 1-based calendar month. Months
// past the configured labels fall back to the English month name.
func (m *Model) MonthLabel(month int) string {
	if month >= 1 && month <= len(m.Months) {
		return cases.Title(language.English).String(m.Months[month-1])
	}
	return time.Month(month).String()
}
