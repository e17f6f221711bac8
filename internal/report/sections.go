// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"fmt"
	"io"

	"github.com/vk/bikeshare/internal/stats"
	"github.com/vk/bikeshare/internal/trip"
)

// TimeSection reports the most frequent times of travel.
type TimeSection struct{}

func (TimeSection) Title() string { return "Calculating The Most Frequent Times of Travel..." }

func (TimeSection) Render(w io.Writer, in *Input) error {
	s, err := stats.Times(in.Table)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The most frequent month: %s\n", in.Catalog.MonthLabel(s.Month))
	fmt.Fprintf(w, "The most common day: %s\n", s.Day)
	fmt.Fprintf(w, "The most popular hour of traveling: %s\n", FormatHour(s.Hour))
	return nil
}

// StationSection reports the most popular stations and trip.
type StationSection struct{}

func (StationSection) Title() string { return "Calculating The Most Popular Stations and Trip..." }

func (StationSection) Render(w io.Writer, in *Input) error {
	s, err := stats.Stations(in.Table)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Most commonly used start station: %s\n", s.Start)
	fmt.Fprintf(w, "Most commonly used end station: %s\n", s.End)
	fmt.Fprintf(w, "Most common trip from start to end station: %s\n", s.Route)
	return nil
}

// DurationSection reports total and mean travel time.
type DurationSection struct{}

func (DurationSection) Title() string { return "Calculating Trip Duration..." }

func (DurationSection) Render(w io.Writer, in *Input) error {
	s, err := stats.Durations(in.Table)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total travel time: %s\n", FormatDuration(s.Total))
	fmt.Fprintf(w, "Mean travel time: %s\n", FormatDuration(s.Mean))
	return nil
}

// UserSection reports user types and, where available, demographics.
type UserSection struct{}

func (UserSection) Title() string { return "Calculating User Stats..." }

func (UserSection) Render(w io.Writer, in *Input) error {
	s, err := stats.Users(in.Table)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Subscribers: %d\n", s.UserTypes.Get(stats.Subscriber))
	fmt.Fprintf(w, "Customers: %d\n", s.UserTypes.Get(stats.Customer))
	for _, c := range s.UserTypes {
		if c.Value == stats.Subscriber || c.Value == stats.Customer {
			continue
		}
		label := c.Value
		if label == "" {
			label = "Unknown"
		}
		fmt.Fprintf(w, "Other (%s): %d\n", label, c.N)
	}

	d := s.Demographics
	if d == nil {
		fmt.Fprintf(w, "Sorry, gender and birth stats are not available for %s.\n", trip.Title(in.City))
		return nil
	}
	if d.HasGender {
		fmt.Fprintf(w, "Males: %d\n", d.Genders.Get(stats.Male))
		fmt.Fprintf(w, "Females: %d\n", d.Genders.Get(stats.Female))
	}
	if d.HasBirthYear {
		if d.KnownBirthYears == 0 {
			fmt.Fprintln(w, "No birth year data for these filters.")
			return nil
		}
		fmt.Fprintf(w, "Earliest year of birth: %d\n", d.EarliestBirthYear)
		fmt.Fprintf(w, "Most recent year of birth: %d\n", d.MostRecentBirthYear)
		fmt.Fprintf(w, "Most common year of birth: %d\n", d.CommonBirthYear)
	}
	return nil
}
