// Package app wires configuration, logging, the gradebook store and the
// selected user interface into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/agbru/gradebook/internal/cli"
	"github.com/agbru/gradebook/internal/config"
	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/logging"
	"github.com/agbru/gradebook/internal/server"
	"github.com/agbru/gradebook/internal/tui"
	"github.com/agbru/gradebook/internal/ui"
)

// Application represents the gradebook application instance.
type Application struct {
	Config    config.AppConfig
	Store     gradebook.Store
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithStore sets the store the application serves. A new empty gradebook is
// used otherwise.
func WithStore(s gradebook.Store) AppOption {
	return func(a *Application) { a.Store = s }
}

// WithInput sets the reader the console menu reads from. Defaults to stdin.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Store == nil {
		app.Store = gradebook.New()
	}

	programName := "gradebook"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	logger := logging.New(a.ErrWriter, logging.Options{
		Level:     a.Config.LogLevel,
		JSON:      a.Config.LogJSON,
		Component: "gradebook",
	})
	ui.InitTheme(a.Config.Theme, a.Config.NoColor || !isTerminal(out))

	if a.Config.Demo {
		if err := gradebook.LoadDemo(a.Store); err != nil {
			logger.Error("loading demo data failed", err)
			return apperrors.ExitErrorGeneric
		}
		logger.Debug("demo data loaded", logging.Int("students", a.Store.Len()))
	}

	logger.Debug("starting", logging.String("mode", a.Config.Mode()), logging.String("version", Version))
	switch a.Config.Mode() {
	case "tui":
		return a.runTUI(ctx, logger)
	case "serve":
		return a.runServer(ctx, logger)
	default:
		return a.runMenu(out, logger)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runMenu runs the console menu until the user exits.
func (a *Application) runMenu(out io.Writer, logger logging.Logger) int {
	repl := cli.NewREPL(a.Store, cli.REPLConfig{Logger: logger})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context, logger logging.Logger) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.Store, logger, Version)
}

// runServer serves the HTTP API until interrupted.
func (a *Application) runServer(ctx context.Context, logger logging.Logger) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Store, a.Config.Addr, server.WithLogger(logger))
	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps an error returned by New to a process exit status.
func ExitCode(err error) int {
	if err == nil || IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
