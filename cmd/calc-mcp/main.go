package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/repl"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app holds what every subcommand needs once flags are parsed
type app struct {
	fs         afero.Fs
	configPath string
	config     *types.Config
	logger     *slog.Logger
	logCloser  io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{fs: afero.NewOsFs()}

	var (
		logLevel string
		logFile  string
		locale   string
	)

	root := &cobra.Command{
		Use:          project.Name,
		Short:        "Chaining calculator with unary functions, memory and history, served over MCP",
		Version:      project.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.fs, a.configPath)
			if err != nil {
				return err
			}

			// Flags override the config file
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if cmd.Flags().Changed("locale") {
				cfg.Locale = locale
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			// stdout carries the MCP transport
			logger, closer, err := logging.New(cfg, a.fs, os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			slog.SetDefault(logger)

			a.config = cfg
			a.logger = logger
			a.logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to the TOML config file (default: "+config.DefaultPath()+")")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	flags.StringVar(&locale, "locale", calc.DefaultLocale.String(), "Locale for digit grouping (BCP 47 tag)")

	root.AddCommand(newServeCommand(a), newReplCommand(a))
	return root
}

// newCalculatorFactory builds calculators using the configured locale and logger
func (a *app) newCalculatorFactory() session.Factory {
	tag := language.Make(a.config.Locale)
	return func() *calc.Calculator {
		return calc.New(calc.WithLocale(tag), calc.WithLogger(a.logger))
	}
}

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := session.NewManager(a.newCalculatorFactory())
			calcServer := server.NewCalcServer(a.config, sessions, a.logger)
			defer calcServer.Shutdown(context.Background())

			return calcServer.Start(cmd.Context())
		},
	}
}

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the calculator interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			historyPath := ""
			if dir, err := os.UserConfigDir(); err == nil {
				historyPath = filepath.Join(dir, project.Name, "repl_history")
			}

			shell := repl.NewShell(a.newCalculatorFactory()(), a.fs, historyPath, a.logger)
			return shell.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
