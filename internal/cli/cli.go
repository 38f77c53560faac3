package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"minigrep/internal/config"
	"minigrep/internal/domain"
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

// Options holds everything parsed from the command line.
// Empty strings mean the flag was not given.
type Options struct {
	Args            []string
	ConfigPath      string
	CaseInsensitive bool
	Interactive     bool
	InitConfig      bool
	LogLevel        string
	LogFormat       string
}

// Parse processes command-line arguments. It returns the parsed Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
minigrep - print the lines of a file that contain a query.

Usage:
  minigrep [options] QUERY FILE

Environment:
  IGNORE_CASE
    Search case-insensitively when set (unless set to a false value such as 0).

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}
	flagSet.BoolVar(&opts.CaseInsensitive, "i", false, "Search case-insensitively (shorthand).")
	flagSet.BoolVar(&opts.CaseInsensitive, "ignore-case", false, "Search case-insensitively.")
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file (default ./minigrep.yaml or ~/.config/minigrep/config.yaml).")
	flagSet.BoolVar(&opts.Interactive, "tui", false, "Browse matches interactively.")
	flagSet.BoolVar(&opts.InitConfig, "init-config", false, "Write the default config to ~/.config/minigrep/config.yaml and exit. An existing file is left untouched.")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&opts.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	opts.Args = flagSet.Args()

	opts.LogLevel = strings.ToLower(opts.LogLevel)
	if opts.LogLevel != "" && !config.ValidLogLevel(opts.LogLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if opts.LogFormat != "" && !config.ValidLogFormat(opts.LogFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	return opts, false, nil
}

// ApplyTo overlays the flags that were given onto cfg.
func (o *Options) ApplyTo(cfg *config.AppConfig) {
	if o.CaseInsensitive {
		cfg.CaseInsensitive = true
	}
	if o.Interactive {
		cfg.Interactive = true
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
}

// ExitCode wraps err in an ExitError with the code the process should exit
// with: 2 for usage problems, 1 for everything else.
func ExitCode(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var missing *domain.MissingArgumentError
	if errors.As(err, &missing) {
		return &ExitError{Code: 2, Message: fmt.Sprintf("Problem parsing arguments: %v", err)}
	}
	return &ExitError{Code: 1, Message: fmt.Sprintf("Application error: %v", err)}
}
