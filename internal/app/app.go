// Package app wires flag/environment configuration, logging, and the
// codec/arithmetic engine behind the cmd/basex entry point.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Kronuz/base-x-go/internal/biguint"
	"github.com/Kronuz/base-x-go/internal/config"
	apperrors "github.com/Kronuz/base-x-go/internal/errors"
	"github.com/Kronuz/base-x-go/internal/logging"
	"github.com/Kronuz/base-x-go/internal/ui"
	"github.com/rs/zerolog"
)

// Application represents the basex CLI instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	app := &Application{ErrWriter: errWriter}

	programName := "basex"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	cfg, err := config.ParseCLIFlags(fs, cmdArgs)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the configured operation and returns a process exit code.
func (a *Application) Run(out io.Writer) int {
	level := zerolog.InfoLevel
	switch {
	case a.Config.Quiet:
		level = zerolog.ErrorLevel
	case a.Config.Verbose:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	a.Logger = logging.NewLogger(a.ErrWriter, "basex")
	ui.InitTheme(a.Config.NoColor)

	biguint.SetParallelKaratsubaThreshold(a.Config.KaratsubaThreshold)

	return a.runOperation(out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func (a *Application) exitf(format string, args ...any) int {
	fmt.Fprintf(a.ErrWriter, format+"\n", args...)
	return apperrors.ExitErrorGeneric
}
