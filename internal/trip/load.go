// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package trip

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// ErrNoHeader is returned for an input with no header row at all.
var ErrNoHeader = errors.New("no header row")

// timestampLayouts are tried in order when parsing Start Time and End Time.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// ParseError describes a value that could not be converted to its column type.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile opens the CSV file at path and loads every trip in it.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip data: %w", err)
	}
	defer f.Close()

	table, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip data %s: %w", path, err)
	}
	return table, nil
}

// Load reads CSV trip records with a header row from r.
func Load(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := newTable(header)
	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	p := rowParser{
		startTime:    table.column(ColStartTime),
		endTime:      table.column(ColEndTime),
		duration:     table.column(ColTripDuration),
		startStation: table.column(ColStartStation),
		endStation:   table.column(ColEndStation),
		userType:     table.column(ColUserType),
		gender:       table.column(ColGender),
		birthYear:    table.column(ColBirthYear),
	}

	for index := 0; ; index++ {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)
		t, err := p.parse(rec, line)
		if err != nil {
			return nil, err
		}
		t.Index = index
		table.Trips = append(table.Trips, t)
	}
	return table, nil
}

// rowParser holds the column positions resolved from the header. Optional
// columns are -1 when absent.
type rowParser struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (p rowParser) parse(rec []string, line int) (*Trip, error) {
	t := &Trip{
		StartStation: field(rec, p.startStation),
		EndStation:   field(rec, p.endStation),
		UserType:     field(rec, p.userType),
		Gender:       field(rec, p.gender),
		Values:       rec,
	}

	raw := field(rec, p.startTime)
	start, err := parseTimestamp(raw)
	if err != nil {
		return nil, &ParseError{Line: line, Column: ColStartTime, Value: raw, Err: err}
	}
	t.StartTime = start

	// End Time plays no part in any statistic, so an unreadable value is
	// kept only in the raw record.
	if end, err := parseTimestamp(field(rec, p.endTime)); err == nil {
		t.EndTime = end
	}

	raw = field(rec, p.duration)
	t.Duration, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ParseError{Line: line, Column: ColTripDuration, Value: raw, Err: err}
	}

	if raw = field(rec, p.birthYear); raw != "" {
		year, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColBirthYear, Value: raw, Err: err}
		}
		t.BirthYear = int(math.Trunc(year))
	}

	t.derive()
	return t, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var firstErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
