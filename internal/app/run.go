package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/bikeshare/internal/ctxlog"
	"github.com/vk/bikeshare/internal/prompt"
	"github.com/vk/bikeshare/internal/report"
	"github.com/vk/bikeshare/internal/trip"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// Run executes the interactive session loop, reading answers from in. It
// returns nil when the user declines to restart or the input runs out, and
// the error of any session that fails to load or print its data.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p := prompt.New(in, a.outW)
	fmt.Fprintln(a.outW, greeting)

	for iteration := 1; ; iteration++ {
		sessionCtx := ctxlog.WithSession(ctx, a.sessionID())
		logger := ctxlog.FromContext(sessionCtx)
		logger.Debug("Session started.", "iteration", iteration)

		err := a.session(sessionCtx, p)
		if errors.Is(err, io.EOF) {
			logger.Debug("Input exhausted, ending session loop.")
			return nil
		}
		if err != nil {
			logger.Error("Session failed.", "error", err)
			return err
		}

		again, err := p.Confirm(restartQuestion)
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			logger.Debug("App.Run method finished.", "sessions", iteration)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// session runs one pass: collect the filters, load the city, print every
// section and offer the raw data viewer.
func (a *App) session(ctx context.Context, p *prompt.Prompter) error {
	logger := ctxlog.FromContext(ctx)

	sel, err := a.collect(p)
	if err != nil {
		return err
	}
	logger.Info("Filters selected.", "city", sel.City, "month", sel.Month, "day", sel.Day)
	fmt.Fprintln(a.outW, report.Separator)

	table, err := a.load(ctx, sel)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(a.outW, a.clock)
	input := &report.Input{City: sel.City, Table: table, Catalog: a.catalog}
	for _, s := range a.sections {
		if err := printer.Print(s, input); err != nil {
			return err
		}
	}

	windows, err := report.NewPager(p, a.outW, a.pageSize).Run(table)
	logger.Debug("Raw data viewer closed.", "windows", windows)
	return err
}

// load reads the selected city's file and applies the filters.
func (a *App) load(ctx context.Context, sel selection) (*trip.Table, error) {
	logger := ctxlog.FromContext(ctx)

	city, ok := a.catalog.City(sel.City)
	if !ok {
		return nil, fmt.Errorf("city %q is not in the catalog", sel.City)
	}
	path := a.catalog.Resolve(city)
	logger.Debug("Loading trip data.", "city", city.Name, "path", path)

	table, err := trip.LoadFile(path)
	if err != nil {
		return nil, err
	}
	filtered := table.Filter(sel.Filter)
	logger.Info("Trip data loaded.", "rows", table.Len(), "matched", filtered.Len())
	return filtered, nil
}
