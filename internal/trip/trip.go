// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package trip

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names as they appear in the published bike-share data sets.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// requiredColumns must be present in every city file.
var requiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// Trip is a single trip record with its derived time columns.
type Trip struct {
	// Index is the 0-based position of the row in the source file.
	Index int

	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int // 0 when unknown

	// Derived from StartTime.
	Month   int
	Weekday time.Weekday
	Hour    int

	// Values holds the raw CSV fields, aligned with Table.Header.
	Values []string
}

// Route is the "<start> to <end>" label used for station-pair statistics.
func (t *Trip) Route() string {
	return t.StartStation + " to " + t.EndStation
}

func (t *Trip) derive() {
	t.Month = int(t.StartTime.Month())
	t.Weekday = t.StartTime.Weekday()
	t.Hour = t.StartTime.Hour()
}

// Table is the ordered collection of trips for one city.
type Table struct {
	Header []string
	Trips  []*Trip

	columns map[string]int // lower-cased header name -> position
}

func newTable(header []string) *Table {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return &Table{Header: header, columns: cols}
}

// Len returns the number of trips in the table.
func (t *Table) Len() int {
	return len(t.Trips)
}

// HasColumn reports whether the source file carried the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[strings.ToLower(name)]
	return ok
}

func (t *Table) column(name string) int {
	if i, ok := t.columns[strings.ToLower(name)]; ok {
		return i
	}
	return -1
}

// Window returns up to size trips starting at offset. Offsets at or past the
// end yield an empty slice.
func (t *Table) Window(offset, size int) []*Trip {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.Trips) || size <= 0 {
		return nil
	}
	end := offset + size
	if end > len(t.Trips) {
		end = len(t.Trips)
	}
	return t.Trips[offset:end]
}

// Title returns s with the first letter of every word upper-cased, e.g.
// "new york city" -> "New York City". A Caser is stateful, so each call gets
// its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
