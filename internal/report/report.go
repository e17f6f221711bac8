// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package report prints the statistic sections and the raw trip viewer to a
// console stream.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/stats"
	"github.com/vk/bikeshare/internal/trip"
)

// NoDataMessage replaces a section's results when the filtered table is empty.
const NoDataMessage = "No data for these filters."

// Separator closes every section.
var Separator = strings.Repeat("-", 40)

// Input is what every section reports on.
type Input struct {
	City    string
	Table   *trip.Table
	Catalog *config.Model
}

// Section is one block of statistics.
type Section interface {
	// Title is printed before the section runs.
	Title() string
	// Render computes and prints the section's results. Returning
	// stats.ErrNoData prints NoDataMessage instead.
	Render(w io.Writer, in *Input) error
}

// Clock returns the current time. Tests replace it to get stable timings.
type Clock func() time.Time

// Printer runs sections against an output stream.
type Printer struct {
	out   io.Writer
	clock Clock
}

// NewPrinter creates a Printer writing to out. A nil clock uses time.Now.
func NewPrinter(out io.Writer, clock Clock) *Printer {
	if clock == nil {
		clock = time.Now
	}
	return &Printer{out: out, clock: clock}
}

// Print runs one section, framing it with its title, the elapsed time and
// the separator.
func (p *Printer) Print(s Section, in *Input) error {
	fmt.Fprintf(p.out, "\n%s\n\n", s.Title())
	start := p.clock()

	err := s.Render(p.out, in)
	if errors.Is(err, stats.ErrNoData) {
		fmt.Fprintln(p.out, NoDataMessage)
	} else if err != nil {
		return fmt.Errorf("%s: %w", strings.TrimSuffix(s.Title(), "..."), err)
	}

	elapsed := p.clock().Sub(start).Seconds()
	fmt.Fprintf(p.out, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed, 'f', -1, 64))
	fmt.Fprintln(p.out, Separator)
	return nil
}

// FormatHour renders an hour of day on a 12-hour clock, e.g. 17 -> "05 PM".
func FormatHour(hour int) string {
	return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("03 PM")
}

// FormatDuration renders a duration as "HH : MM", dropping seconds. Hours
// are not wrapped at a day, so long totals stay correct.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d : %02d", minutes/60, minutes%60)
}
