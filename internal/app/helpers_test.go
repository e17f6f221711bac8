package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/bikeshare/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-01-02 09:00:00,2017-01-02 09:10:00,600,Canal St,Clark St,Subscriber,Male,1980
955915,2017-02-06 17:30:00,2017-02-06 18:00:00,1800,Canal St,Wells St,Customer,Female,1992
9031,2017-02-13 17:05:00,2017-02-13 17:20:00,900,Clark St,Wells St,Subscriber,Male,1992
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Lincoln Memorial,Jefferson Memorial,Customer
`

// stubLoader returns a fixed catalog and records the paths it was asked for.
type stubLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (s *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	s.paths = paths
	return s.model, s.err
}

// writeDataDir creates a data directory holding the chicago and washington
// fixtures and returns a catalog pointing at it.
func writeDataDir(t *testing.T) *config.Model {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(chicagoCSV), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(washingtonCSV), 0644))

	m := &config.Model{DataDir: dir}
	require.NoError(t, m.AddCity("chicago", "chicago.csv"))
	require.NoError(t, m.AddCity("washington", "washington.csv"))
	require.NoError(t, m.AddCity("new york city", "missing.csv"))
	require.NoError(t, m.Complete())
	return m
}

// setupAppTest creates a new app over the fixture catalog with a frozen
// clock and sequential session ids.
func setupAppTest(t *testing.T) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	cfg, err := NewConfig(Config{PageSize: 2, LogFormat: "text", LogLevel: "debug"})
	require.NoError(t, err)

	testApp, err := NewApp(out, logs, cfg, &stubLoader{model: writeDataDir(t)})
	require.NoError(t, err)

	frozen := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	testApp.clock = func() time.Time { return frozen }
	n := 0
	testApp.sessionID = func() string {
		n++
		return "session-" + string(rune('0'+n))
	}

	t.Cleanup(func() {
		if os.Getenv("BIKESHARE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}
