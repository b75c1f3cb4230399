// Package main is the entry point for the fsutil application.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/fsutil/internal/cli"
	"github.com/joe/fsutil/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var mirror io.Writer
	if cfg.Verbose {
		mirror = os.Stderr
	}

	logger, err := cli.NewLogger(cfg.LogFile, mirror)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	defer func() {
		_ = logger.Close()
	}()

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stderrTTY := term.IsTerminal(int(os.Stderr.Fd()))

	app := &cli.App{
		Out:          os.Stdout,
		Err:          os.Stderr,
		Styles:       cli.NewStyles(stdoutTTY && colorsAllowed(cfg)),
		Log:          logger,
		ShowProgress: stderrTTY && !cfg.Verbose,
	}

	fsys, sourceFS, closer, err := cli.Resolve(cfg)
	if err != nil {
		app.ReportError(err)
		return 1
	}

	defer closer()

	app.FS = fsys
	app.SourceFS = sourceFS

	if err := app.Run(cfg); err != nil {
		app.ReportError(err)
		return 1
	}

	return 0
}

// colorsAllowed honors --no-color, NO_COLOR and TERM=dumb.
func colorsAllowed(cfg *config.Config) bool {
	if cfg.NoColor {
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}
