package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/bikeshare/internal/app"
	"github.com/vk/bikeshare/internal/report"
)

// Environment variables that provide flag defaults.
const (
	EnvConfig    = "BIKESHARE_CONFIG"
	EnvDataDir   = "BIKESHARE_DATA_DIR"
	EnvLogLevel  = "BIKESHARE_LOG_LEVEL"
	EnvLogFormat = "BIKESHARE_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments with defaults taken from the
// process environment. See ParseEnv.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseEnv(args, output, os.Getenv)
}

// ParseEnv processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func ParseEnv(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Bikeshare - Explore US bike share trip data from the terminal.

Usage:
  bikeshare [options] [CATALOG_PATH]

Arguments:
  CATALOG_PATH
    Optional path to a city catalog: a .hcl, .yml or .yaml file, or a
    directory of .hcl files. The built-in catalog (chicago, new york city,
    washington) is used when omitted.

Environment:
  BIKESHARE_CONFIG, BIKESHARE_DATA_DIR, BIKESHARE_LOG_LEVEL and
  BIKESHARE_LOG_FORMAT set the defaults of the matching options. A .env file
  in the working directory is read first.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", getenv(EnvConfig), "Path to the city catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the city catalog file or directory (shorthand).")
	dataDirFlag := flagSet.String("data-dir", getenv(EnvDataDir), "Directory holding the city CSV files. Overrides the catalog's data_dir.")
	pageSizeFlag := flagSet.Int("page-size", report.DefaultPageSize, "Number of raw trip rows shown per page.")
	logFormatFlag := flagSet.String("log-format", orDefault(getenv(EnvLogFormat), "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", orDefault(getenv(EnvLogLevel), "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
	}
	slog.Debug("Catalog path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		DataDir:    *dataDirFlag,
		PageSize:   *pageSizeFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
