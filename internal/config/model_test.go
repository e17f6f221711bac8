// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsComplete(t *testing.T) {
	t.Parallel()

	m := Default()

	require.NoError(t, m.Complete())
	require.Equal(t, []string{"chicago", "new york city", "washington"}, m.CityNames())
	require.Equal(t, []string{"january", "february", "march", "april", "may", "june"}, m.Months)
}

func TestDefaultLoader_IgnoresPaths(t *testing.T) {
	t.Parallel()

	m, err := DefaultLoader{}.Load(context.Background(), "whatever.hcl")

	require.NoError(t, err)
	require.Equal(t, Default(), m)
}

func TestModel_MonthLookup(t *testing.T) {
	t.Parallel()
	m := Default()

	require.Equal(t, 1, m.MonthIndex("january"))
	require.Equal(t, 3, m.MonthIndex("March"))
	require.Equal(t, 6, m.MonthIndex(" june "))
	require.Equal(t, 0, m.MonthIndex("mars"))
	require.Equal(t, 0, m.MonthIndex("july"))

	require.Equal(t, "February", m.MonthLabel(2))
	require.Equal(t, "September", m.MonthLabel(9), "months past the labels use the calendar name")
}

func TestModel_CityLookupAndResolve(t *testing.T) {
	t.Parallel()
	m := Default()
	m.DataDir = "data"

	c, ok := m.City("New York City")
	require.True(t, ok)
	require.Equal(t, filepath.Join("data", "new_york_city.csv"), m.Resolve(c))

	abs := &City{Name: "x", File: filepath.Join(t.TempDir(), "x.csv")}
	require.Equal(t, abs.File, m.Resolve(abs))

	_, ok = m.City("paris")
	require.False(t, ok)
}

func TestModel_Complete(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		model     *Model
		expectErr string
		check     func(t *testing.T, m *Model)
	}{
		{
			name: "fills defaults and lower-cases names",
			model: &Model{
				Cities: map[string]*City{"Boston": {File: "boston.csv"}},
				Months: []string{"January", "FEBRUARY"},
			},
			check: func(t *testing.T, m *Model) {
				require.Equal(t, ".", m.DataDir)
				require.Equal(t, []string{"january", "february"}, m.Months)
				c, ok := m.Cities["boston"]
				require.True(t, ok)
				require.Equal(t, "boston", c.Name)
			},
		},
		{
			name: "default months when omitted",
			model: &Model{
				Cities: map[string]*City{"boston": {Name: "boston", File: "boston.csv"}},
			},
			check: func(t *testing.T, m *Model) {
				require.Equal(t, DefaultMonths, m.Months)
			},
		},
		{
			name:      "no cities",
			model:     &Model{},
			expectErr: "invalid city catalog",
		},
		{
			name: "city without file",
			model: &Model{
				Cities: map[string]*City{"boston": {Name: "boston"}},
			},
			expectErr: "invalid city catalog",
		},
		{
			name: "duplicate month labels",
			model: &Model{
				Months: []string{"may", "May"},
				Cities: map[string]*City{"boston": {Name: "boston", File: "b.csv"}},
			},
			expectErr: "invalid city catalog",
		},
		{
			name: "names colliding after lower-casing",
			model: &Model{
				Cities: map[string]*City{
					"boston": {Name: "boston", File: "a.csv"},
					"BOSTON": {Name: "Boston", File: "b.csv"},
				},
			},
			expectErr: "defined more than once",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.model.Complete()

			if tc.expectErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, tc.model)
			}
		})
	}
}

func TestModel_AddCity(t *testing.T) {
	t.Parallel()
	m := &Model{}

	require.NoError(t, m.AddCity("Denver", "denver.csv"))
	require.Error(t, m.AddCity("denver", "other.csv"))
	require.Equal(t, []string{"denver"}, m.CityNames())
}
