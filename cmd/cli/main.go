package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/bikeshare/internal/app"
	"github.com/vk/bikeshare/internal/cli"
	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/hcl"
	"github.com/vk/bikeshare/internal/yamlcfg"
)

// main is the entrypoint for the bikeshare application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// A missing .env file is normal; anything else is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to read .env file.", "error", err)
	}

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	bikeshareApp, err := app.NewApp(outW, errW, appConfig, newLoader(appConfig.ConfigPath))
	if err != nil {
		return err
	}
	return bikeshareApp.Run(context.Background(), in)
}

// newLoader picks the catalog loader for path: YAML for .yml and .yaml
// files, HCL for anything else, and the built-in catalog when path is empty.
func newLoader(path string) config.Loader {
	if path == "" {
		return config.DefaultLoader{}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yamlcfg.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
