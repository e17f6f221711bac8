// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package stats computes the descriptive statistics reported for a trip
// table. Every function is pure: it reads the table and returns a value.
package stats

import (
	"errors"
	"math"
	"time"

	"github.com/vk/bikeshare/internal/trip"
)

// ErrNoData is returned when a statistic is requested over an empty table.
var ErrNoData = errors.New("no data for these filters")

// Known category labels in the User Type and Gender columns.
const (
	Subscriber = "Subscriber"
	Customer   = "Customer"
	Male       = "Male"
	Female     = "Female"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month int    // 1-12
	Day   string // weekday name
	Hour  int    // 0-23
}

// Times returns the modal start month, weekday and hour.
func Times(t *trip.Table) (TimeStats, error) {
	if t.Len() == 0 {
		return TimeStats{}, ErrNoData
	}
	months := make([]int, 0, t.Len())
	days := make([]string, 0, t.Len())
	hours := make([]int, 0, t.Len())
	for _, tr := range t.Trips {
		months = append(months, tr.Month)
		days = append(days, tr.Weekday.String())
		hours = append(hours, tr.Hour)
	}

	var s TimeStats
	s.Month, _ = Mode(months)
	s.Day, _ = Mode(days)
	s.Hour, _ = Mode(hours)
	return s, nil
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start string
	End   string
	Route string // "<start> to <end>"
}

// Stations returns the modal start station, end station and route. The route
// is the mode of the joined labels, which is not in general the pairing of
// the two per-column modes.
func Stations(t *trip.Table) (StationStats, error) {
	if t.Len() == 0 {
		return StationStats{}, ErrNoData
	}
	starts := make([]string, 0, t.Len())
	ends := make([]string, 0, t.Len())
	routes := make([]string, 0, t.Len())
	for _, tr := range t.Trips {
		starts = append(starts, tr.StartStation)
		ends = append(ends, tr.EndStation)
		routes = append(routes, tr.Route())
	}

	var s StationStats
	s.Start, _ = Mode(starts)
	s.End, _ = Mode(ends)
	s.Route, _ = Mode(routes)
	return s, nil
}

// DurationStats holds the total and mean trip duration.
type DurationStats struct {
	Total time.Duration
	Mean  time.Duration
}

// Durations sums and averages Trip Duration.
func Durations(t *trip.Table) (DurationStats, error) {
	if t.Len() == 0 {
		return DurationStats{}, ErrNoData
	}
	var sum float64
	for _, tr := range t.Trips {
		sum += tr.Duration
	}
	return DurationStats{
		Total: seconds(sum),
		Mean:  seconds(sum / float64(t.Len())),
	}, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// UserStats holds the user type breakdown and, when the source carries the
// columns, the demographic breakdown.
type UserStats struct {
	UserTypes Counts[string]
	// Demographics is nil when neither Gender nor Birth Year is present.
	Demographics *Demographics
}

// Demographics holds gender counts and birth year extremes.
type Demographics struct {
	HasGender bool
	Genders   Counts[string] // blank genders are not counted

	HasBirthYear bool
	// KnownBirthYears is the number of trips with a birth year; the fields
	// below are zero when it is 0.
	KnownBirthYears     int
	EarliestBirthYear   int
	MostRecentBirthYear int
	CommonBirthYear     int
}

// Users computes user type counts and demographics.
func Users(t *trip.Table) (UserStats, error) {
	if t.Len() == 0 {
		return UserStats{}, ErrNoData
	}
	types := make([]string, 0, t.Len())
	for _, tr := range t.Trips {
		types = append(types, tr.UserType)
	}
	s := UserStats{UserTypes: Tally(types)}

	hasGender := t.HasColumn(trip.ColGender)
	hasBirth := t.HasColumn(trip.ColBirthYear)
	if !hasGender && !hasBirth {
		return s, nil
	}

	d := &Demographics{HasGender: hasGender, HasBirthYear: hasBirth}
	var genders []string
	var years []int
	for _, tr := range t.Trips {
		if hasGender && tr.Gender != "" {
			genders = append(genders, tr.Gender)
		}
		if hasBirth && tr.BirthYear != 0 {
			years = append(years, tr.BirthYear)
		}
	}
	d.Genders = Tally(genders)
	if len(years) > 0 {
		d.KnownBirthYears = len(years)
		d.EarliestBirthYear, d.MostRecentBirthYear = years[0], years[0]
		for _, y := range years[1:] {
			d.EarliestBirthYear = min(d.EarliestBirthYear, y)
			d.MostRecentBirthYear = max(d.MostRecentBirthYear, y)
		}
		d.CommonBirthYear, _ = Mode(years)
	}
	s.Demographics = d
	return s, nil
}
