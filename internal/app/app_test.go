package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/report"
	"github.com/vk/bikeshare/internal/trip"
)

func TestApp_Run_FullSession(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, out, _ := setupAppTest(t)
	answers := "chicago\nfebruary\nmonday\nyes\nno\nno\n"

	// --- Act ---
	err := testApp.Run(context.Background(), strings.NewReader(answers))

	// --- Assert ---
	require.NoError(t, err)
	got := out.String()
	require.True(t, strings.HasPrefix(got, greeting+"\n"))
	require.Contains(t, got, "\nChoose a city from chicago, new york city, washington: \n")
	require.Contains(t, got, "Enter a month from the first 6 months of the year or Enter \"all\" of them\n")
	require.Contains(t, got, dayQuestion)

	for _, want := range []string{
		"The most frequent month: February\n",
		"The most common day: Monday\n",
		"The most popular hour of traveling: 05 PM\n",
		"Most commonly used start station: Canal St\n",
		"Most commonly used end station: Wells St\n",
		"Most common trip from start to end station: Canal St to Wells St\n",
		"Total travel time: 00 : 45\n",
		"Mean travel time: 00 : 22\n",
		"Subscribers: 1\n",
		"Customers: 1\n",
		"Males: 1\n",
		"Females: 1\n",
		"Earliest year of birth: 1992\n",
		"Most recent year of birth: 1992\n",
	} {
		require.Contains(t, got, want)
	}
	require.Equal(t, 4, strings.Count(got, "This took 0 seconds."))
	require.Contains(t, got, "955915", "the raw viewer shows the filtered rows")
	require.NotContains(t, got, "1423854", "January rows are filtered out")
	require.Equal(t, 1, strings.Count(got, restartQuestion))
}

func TestApp_Run_RepromptsInvalidInput(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t)
	answers := "boston\nChicago\nmars\nALL\nfunday\n all \nno\nno\n"

	err := testApp.Run(context.Background(), strings.NewReader(answers))

	require.NoError(t, err)
	got := out.String()
	require.Equal(t, 1, strings.Count(got, invalidCity))
	require.Equal(t, 1, strings.Count(got, invalidMonth))
	require.Equal(t, 1, strings.Count(got, "\nDay input not valid, Please try again\n"))
	require.Contains(t, got, "The most frequent month: February\n")
}

func TestApp_Run_RestartsWithNewSession(t *testing.T) {
	t.Parallel()

	testApp, out, logs := setupAppTest(t)
	answers := "chicago\nall\nall\nno\nYes\nwashington\nmarch\nall\nno\nno\n"

	err := testApp.Run(context.Background(), strings.NewReader(answers))

	require.NoError(t, err)
	got := out.String()
	require.Equal(t, 1, strings.Count(got, greeting))
	require.Equal(t, 2, strings.Count(got, restartQuestion))
	require.Equal(t, 1, strings.Count(got, "Sorry, gender and birth stats are not available for Washington."))
	require.Contains(t, got, "Most commonly used start station: Lincoln Memorial\n")
	require.Contains(t, logs.String(), "session=session-1")
	require.Contains(t, logs.String(), "session=session-2")
}

func TestApp_Run_EmptySelection(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t)

	err := testApp.Run(context.Background(), strings.NewReader("chicago\njune\nall\nyes\nno\nno\n"))

	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out.String(), report.NoDataMessage))
	require.Contains(t, out.String(), "No more trip data to display.")
}

func TestApp_Run_EndOfInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		answers string
	}{
		{name: "no answers", answers: ""},
		{name: "during month prompt", answers: "chicago\n"},
		{name: "during raw viewer", answers: "chicago\nall\nall\nyes\n"},
		{name: "during restart prompt", answers: "chicago\nall\nall\nno\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testApp, _, _ := setupAppTest(t)

			err := testApp.Run(context.Background(), strings.NewReader(tc.answers))

			require.NoError(t, err)
		})
	}
}

func TestApp_Run_LoadError(t *testing.T) {
	t.Parallel()

	testApp, out, logs := setupAppTest(t)

	err := testApp.Run(context.Background(), strings.NewReader("new york city\nall\nall\n"))

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to open trip data")
	require.NotContains(t, out.String(), "Calculating")
	require.Contains(t, logs.String(), "Session failed.")
}

func TestApp_Run_ParseErrorCarriesLine(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t)
	broken := chicagoCSV + "77,not a time,,60,A,B,Subscriber,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(testApp.catalog.DataDir, "broken.csv"), []byte(broken), 0644))
	testApp.catalog.Cities["chicago"].File = "broken.csv"

	err := testApp.Run(context.Background(), strings.NewReader("chicago\nall\nall\n"))

	var parseErr *trip.ParseError
	require.True(t, errors.As(err, &parseErr), "expected a *trip.ParseError, got %v", err)
	require.Equal(t, 5, parseErr.Line)
	require.Equal(t, trip.ColStartTime, parseErr.Column)
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	t.Run("passes the config path and applies the data dir override", func(t *testing.T) {
		t.Parallel()
		loader := &stubLoader{model: config.Default()}
		cfg := &Config{ConfigPath: "cities.hcl", DataDir: "/data", PageSize: 5, LogFormat: "text", LogLevel: "warn"}

		a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, loader)

		require.NoError(t, err)
		require.Equal(t, []string{"cities.hcl"}, loader.paths)
		require.Equal(t, "/data", a.Catalog().DataDir)
		require.Len(t, a.sections, len(coreSections))
	})

	t.Run("no config path", func(t *testing.T) {
		t.Parallel()
		loader := &stubLoader{model: config.Default()}
		cfg := &Config{PageSize: 5, LogFormat: "json", LogLevel: "warn"}

		a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, loader, report.TimeSection{})

		require.NoError(t, err)
		require.Empty(t, loader.paths)
		require.Equal(t, ".", a.Catalog().DataDir)
		require.Len(t, a.sections, 1)
	})

	t.Run("loader failure", func(t *testing.T) {
		t.Parallel()
		loader := &stubLoader{err: errors.New("bad catalog")}
		cfg := &Config{PageSize: 5, LogFormat: "text", LogLevel: "warn"}

		_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, loader)

		require.EqualError(t, err, "failed to load city catalog: bad catalog")
	})
}
