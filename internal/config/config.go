// Package config parses the gradebook command line and environment into an
// AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/agbru/gradebook/internal/errors"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "GRADEBOOK_"

// DefaultAddr is the listen address used by --serve when --addr is not given.
const DefaultAddr = ":8080"

// DefaultEnvFile is the dotenv file read before environment overrides.
const DefaultEnvFile = ".env"

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// ThemeNames lists the color themes accepted by --theme.
var ThemeNames = []string{"dark", "light"}

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// TUI starts the interactive terminal dashboard instead of the menu.
	TUI bool
	// Serve starts the HTTP JSON server instead of the menu.
	Serve bool
	// Addr is the HTTP listen address used with Serve.
	Addr string
	// Demo pre-populates the store with sample students.
	Demo bool
	// NoColor disables ANSI colors in console output.
	NoColor bool
	// Theme names the color palette for the menu and the TUI.
	Theme string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogJSON switches logs from the console writer to JSON lines.
	LogJSON bool
	// Completion, when set, prints a completion script for that shell and exits.
	Completion string
}

// Mode returns the name of the interface selected by the configuration.
func (c AppConfig) Mode() string {
	switch {
	case c.Completion != "":
		return "completion"
	case c.TUI:
		return "tui"
	case c.Serve:
		return "serve"
	default:
		return "menu"
	}
}

// Validate checks the configuration for conflicting or unsupported values.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.TUI && c.Serve {
		return apperrors.NewConfigError("--tui and --serve cannot be used together")
	}
	if c.Serve && strings.TrimSpace(c.Addr) == "" {
		return apperrors.NewConfigError("--addr cannot be empty with --serve")
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return apperrors.NewConfigError("unknown log level %q (valid: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !contains(ThemeNames, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)",
			c.Theme, strings.Join(ThemeNames, ", "))
	}
	if c.Completion != "" && !contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for completion (valid: %s)",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig.
// Values come from, in decreasing priority: flags, GRADEBOOK_ environment
// variables, the .env file in the working directory, then defaults.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments without the program name.
//   - errorWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	return parseConfig(programName, args, errorWriter, DefaultEnvFile)
}

func parseConfig(programName string, args []string, errorWriter io.Writer, envFile string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "An in-memory student gradebook with a console menu, a TUI, and an HTTP API.")
		fmt.Fprintln(errorWriter)
		fmt.Fprintln(errorWriter, "Options:")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive terminal dashboard.")
	fs.BoolVar(&config.Serve, "serve", false, "Start the HTTP JSON server.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address for --serve.")
	fs.BoolVar(&config.Demo, "demo", false, "Pre-populate the gradebook with sample students.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", "dark", "Color theme (dark, light).")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled).")
	fs.BoolVar(&config.LogJSON, "log-json", false, "Write logs as JSON lines.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for the given shell (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errorWriter, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	// Load never overrides variables already present in the environment.
	// A missing file is fine; a malformed one is not.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			cfgErr := apperrors.NewConfigError("reading %s: %v", envFile, err)
			fmt.Fprintln(errorWriter, cfgErr)
			return AppConfig{}, cfgErr
		}
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
