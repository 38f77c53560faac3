package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"minigrep/internal/cli"
	"minigrep/internal/config"
	"minigrep/internal/search"
	"minigrep/internal/service"
	"minigrep/internal/tui"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		exitErr := cli.ExitCode(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run wires the application together. It writes matches to stdout and
// diagnostics to stderr, and reads the environment only through lookupEnv.
func run(args []string, stdout, stderr io.Writer, lookupEnv config.LookupFunc) error {
	opts, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if opts.InitConfig {
		path, err := config.DefaultUserConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("config already exists: %s", path)}
		}
		if err := config.Save(path, config.DefaultConfig()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintln(stdout, path)
		return nil
	}

	// Positional arity does not depend on any config file.
	if _, err := config.Resolve(opts.Args, nil, nil); err != nil {
		return err
	}

	var appCfg *config.AppConfig
	var cfgPath string
	if opts.ConfigPath == "" {
		appCfg, cfgPath, err = config.LoadDefault()
	} else {
		cfgPath = opts.ConfigPath
		appCfg, err = config.Load(opts.ConfigPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.ApplyTo(appCfg)

	logger := cli.NewLogger(appCfg.Log.Level, appCfg.Log.Format, stderr)
	logger.Debug("Configuration loaded.", "path", cfgPath, "case_insensitive", appCfg.CaseInsensitive)

	cfg, err := config.Resolve(opts.Args, lookupEnv, appCfg)
	if err != nil {
		return err
	}

	svc := service.NewGrepService(search.NewLineSearcher(), logger)
	if !appCfg.Interactive {
		return svc.Run(cfg, stdout)
	}

	doc, err := svc.LoadDocument(cfg.FilePath)
	if err != nil {
		return err
	}
	m := tui.New(svc, doc, cfg.Query, cfg.CaseInsensitive)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
