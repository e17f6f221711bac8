// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/vk/bikeshare/internal/prompt"
	"github.com/vk/bikeshare/internal/trip"
)

const (
	// DefaultPageSize is the number of rows shown per confirmation.
	DefaultPageSize = 5

	viewQuestion = "\nWould you like to view individual trip data? Enter \"yes\" or \"no\":\n"
	endOfData    = "No more trip data to display."
)

// derivedColumns are appended to the source header when rows are shown.
var derivedColumns = []string{"month", "day_of_week", "hour"}

// Pager shows a table in fixed-size windows for as long as the user keeps
// answering "yes".
type Pager struct {
	prompter *prompt.Prompter
	out      io.Writer
	size     int
}

// NewPager creates a Pager. A non-positive size uses DefaultPageSize.
func NewPager(p *prompt.Prompter, out io.Writer, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{prompter: p, out: out, size: size}
}

// Run asks before every window and stops at the first answer other than
// "yes". Windows past the end of the table print endOfData. It returns the
// number of windows shown, including empty ones.
func (p *Pager) Run(t *trip.Table) (int, error) {
	shown := 0
	for offset := 0; ; offset += p.size {
		ok, err := p.prompter.Confirm(viewQuestion)
		if err != nil || !ok {
			return shown, err
		}
		shown++

		rows := t.Window(offset, p.size)
		if len(rows) == 0 {
			fmt.Fprintln(p.out, endOfData)
			continue
		}
		if err := WriteRows(p.out, t.Header, rows); err != nil {
			return shown, err
		}
	}
}

// WriteRows prints rows as an aligned table: the row index, the source
// columns and the derived time columns.
func WriteRows(w io.Writer, header []string, rows []*trip.Trip) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cols := make([]string, 0, len(header)+len(derivedColumns)+1)
	cols = append(cols, "")
	cols = append(cols, header...)
	cols = append(cols, derivedColumns...)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, r := range rows {
		cells := make([]string, 0, len(cols))
		cells = append(cells, strconv.Itoa(r.Index))
		for i := range header {
			v := ""
			if i < len(r.Values) {
				v = r.Values[i]
			}
			cells = append(cells, v)
		}
		cells = append(cells, strconv.Itoa(r.Month), r.Weekday.String(), strconv.Itoa(r.Hour))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
