// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package trip

// Filter selects trips by start month and day of week.
type Filter struct {
	// Month is the 1-based calendar month to keep; 0 keeps every month.
	Month int
	// Day is the title-cased weekday name to keep ("Monday"); "" keeps every day.
	Day string
}

// NewFilter builds a Filter from a month index and a weekday name in any
// letter case. "all" and "" both disable the day filter.
func NewFilter(month int, day string) Filter {
	if day == "all" {
		day = ""
	}
	return Filter{Month: month, Day: Title(day)}
}

// IsZero reports whether the filter keeps every trip.
func (f Filter) IsZero() bool {
	return f.Month == 0 && f.Day == ""
}

// Matches reports whether the trip satisfies both criteria.
func (f Filter) Matches(t *Trip) bool {
	if f.Month != 0 && t.Month != f.Month {
		return false
	}
	if f.Day != "" && t.Weekday.String() != f.Day {
		return false
	}
	return true
}

// Filter returns a new table holding the trips that match f, in their
// original order. The receiver is left untouched.
func (t *Table) Filter(f Filter) *Table {
	out := &Table{Header: t.Header, columns: t.columns}
	if f.IsZero() {
		out.Trips = append([]*Trip(nil), t.Trips...)
		return out
	}
	for _, tr := range t.Trips {
		if f.Matches(tr) {
			out.Trips = append(out.Trips, tr)
		}
	}
	return out
}
