package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/studiowebux/termfolio/internal/cli"
	"github.com/studiowebux/termfolio/internal/config"
	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/portfolio"
	"github.com/studiowebux/termfolio/internal/session"
	"github.com/studiowebux/termfolio/internal/termcap"
	"github.com/studiowebux/termfolio/internal/tui"
	"github.com/studiowebux/termfolio/internal/version"
)

// shutdownTimeout bounds tracker shutdown after the program stops
const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Terminal Portfolio - an interactive resume in your terminal",
	Long: `termfolio - Terminal Portfolio

Browse a professional portfolio from the terminal: home, about, experience,
skills, projects and contact, driven entirely by the keyboard.

Keys:
  ←/→ h/l j/k     previous / next section (wraps around)
  1-6             jump to a section
  g / G           first / last section
  ?               help overlay
  q, esc, ctrl+c  quit

When standard output is not a terminal the portfolio is printed as text.

Examples:
  termfolio                          # Start interactive portfolio
  termfolio print --section skills   # Print one section
  termfolio print --format yaml      # Dump the content as YAML
  termfolio keys                     # List key bindings
  termfolio doctor                   # Show terminal capabilities`,
	Version:       version.Current(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the portfolio as plain text, YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrint(cmd)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings, or export the defaults with --export",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeys(cmd)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report terminal capabilities and configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd)
	},
}

// Flags for root command
var (
	flagConfig      string
	flagContent     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
	flagLogFile     string
	flagLogLevel    string
	flagKeybinds    string
	flagSummary     bool
	flagJumpLast    string
	flagSessionID   string
)

// Flags for print
var (
	printSection string
	printFormat  string
)

// Flags for keys
var (
	keysExport bool
	keysForce  bool
)

func init() {
	rootCmd.SetVersionTemplate("termfolio {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.config/termfolio/config.yaml)")
	pf.StringVar(&flagContent, "content", "", "YAML file replacing the built-in portfolio content")
	pf.StringVar(&flagKeybinds, "keybinds", "", "Key bindings file (default ~/.config/termfolio/keybinds.json)")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file (logging is off by default)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	f := rootCmd.Flags()
	f.DurationVar(&flagIdleTimeout, "idle-timeout", session.DefaultIdleTimeout, "End the session after this long without input")
	f.IntVar(&flagMaxSessions, "max-sessions", session.DefaultMaxSessions, "Maximum concurrently tracked sessions")
	f.BoolVar(&flagSummary, "summary", false, "Print session statistics on exit")
	f.StringVar(&flagJumpLast, "jump-last", "contact", "Target of G: contact or home")
	f.StringVar(&flagSessionID, "session-id", "", "Use this session id instead of a generated one")

	printCmd.Flags().StringVarP(&printSection, "section", "s", "", "Print only this section (home, about, experience, skills, projects, contact)")
	printCmd.Flags().StringVarP(&printFormat, "format", "f", "text", "Output format: text, yaml, json")

	keysCmd.Flags().BoolVar(&keysExport, "export", false, "Write the default bindings to the keybinds file")
	keysCmd.Flags().BoolVar(&keysForce, "force", false, "Overwrite an existing keybinds file with --export")

	rootCmd.AddCommand(printCmd, keysCmd, doctorCmd)
}

// env is what every command needs after startup
type env struct {
	settings *config.Settings
	logger   *slog.Logger
	closer   io.Closer
	caps     termcap.Capabilities
	ui       *cli.UI
}

func (e *env) Close() {
	if err := e.closer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
	}
}

// setup loads settings, builds the logger and probes the terminal
func setup(cmd *cobra.Command) (*env, error) {
	settings, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := config.NewLogger(settings.LogFile, settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	slog.SetDefault(logger)

	caps := termcap.Detect(os.Stdout)
	logger.Debug("startup",
		"version", version.Current(),
		"config", settings.ConfigFile,
		"color", termcap.ProfileName(caps.ColorProfile),
		"unicode", caps.UnicodeSupported,
		"interactive", caps.Interactive,
	)

	ui := cli.New(caps)
	ui.Out = cmd.OutOrStdout()
	ui.ErrOut = cmd.ErrOrStderr()

	return &env{settings: settings, logger: logger, closer: closer, caps: caps, ui: ui}, nil
}

// loadContent returns the built-in portfolio unless a content file is set
func loadContent(path string) (*portfolio.Portfolio, error) {
	if path == "" {
		return portfolio.Default(), nil
	}
	p, err := portfolio.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// loadKeybinds loads the bindings file and validates the result
func loadKeybinds(path string) (*keybinds.Registry, *keybinds.ValidationResult, error) {
	registry, cfg, err := keybinds.LoadOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	return registry, keybinds.NewValidator().Validate(registry, cfg), nil
}

// logKeybinds loads the bindings and logs validator findings
func logKeybinds(e *env) (*keybinds.Registry, error) {
	registry, result, err := loadKeybinds(e.settings.KeybindsFile)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		e.logger.Warn("keybinds", "issue", w.Error())
	}
	for _, v := range result.Errors {
		e.logger.Error("keybinds", "issue", v.Error())
	}
	return registry, nil
}

func runTUI(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	content, contentErr := loadContent(e.settings.ContentFile)

	if !e.caps.Interactive {
		e.logger.Info("stdout is not a terminal, printing instead")
		if contentErr != nil {
			return contentErr
		}
		return e.ui.PrintPortfolio(content, "", cli.FormatText)
	}

	registry, err := logKeybinds(e)
	if err != nil {
		return err
	}
	if contentErr != nil {
		e.logger.Error("invalid content", "error", contentErr)
	}

	opts := e.settings.SessionOptions()
	opts.Logger = e.logger
	tracker := session.New(opts)
	session.SetDefault(tracker)

	ctx := cmd.Context()
	reason, runErr := tui.Run(ctx, tui.Options{
		Portfolio:  content,
		ContentErr: contentErr,
		Tracker:    tracker,
		SessionID:  flagSessionID,
		Keybinds:   registry,
		Caps:       e.caps,
		JumpLast:   e.settings.JumpLast,
		Logger:     e.logger,
		Output:     os.Stdout,
	})

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := tracker.Shutdown(shutdownCtx); err != nil {
		e.logger.Error("tracker shutdown", "error", err)
	}

	stats := tracker.Stats()
	e.logger.Info("exiting",
		"reason", reason,
		"sessions", stats.TotalSessions,
		"avg_duration", stats.AverageSessionDuration,
	)

	if e.settings.Summary {
		if err := e.ui.PrintSummary(stats); err != nil {
			e.logger.Error("print summary", "error", err)
		}
	}

	if reason == session.ReasonTimeout {
		e.ui.Info("Session ended after %s without input", e.settings.IdleTimeout)
	}
	return runErr
}

func runPrint(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	format, err := cli.ParseFormat(printFormat)
	if err != nil {
		return err
	}

	var section portfolio.Section
	if printSection != "" {
		s, ok := portfolio.ParseSection(printSection)
		if !ok {
			if near, ok := portfolio.Suggest(printSection); ok {
				return fmt.Errorf("unknown section %q (did you mean %s?)", printSection, near)
			}
			return fmt.Errorf("unknown section %q", printSection)
		}
		section = s
	}

	content, err := loadContent(e.settings.ContentFile)
	if err != nil {
		return err
	}
	return e.ui.PrintPortfolio(content, section, format)
}

func runKeys(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if keysExport {
		path := e.settings.KeybindsFile
		if _, err := os.Stat(path); err == nil && !keysForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := keybinds.SaveConfig(keybinds.ExportDefaults(), path); err != nil {
			return fmt.Errorf("failed to write keybinds: %w", err)
		}
		e.ui.Success("Wrote default key bindings to %s", path)
		return nil
	}

	registry, err := logKeybinds(e)
	if err != nil {
		return err
	}
	return e.ui.PrintKeys(registry)
}

func runDoctor(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	report := cli.Report{
		Version:      version.Details(),
		Term:         os.Getenv("TERM"),
		CI:           termcap.Env{Lookup: os.LookupEnv}.IsCI(),
		Caps:         e.caps,
		ConfigFile:   e.settings.ConfigFile,
		KeybindsFile: e.settings.KeybindsFile,
		LogFile:      e.settings.LogFile,
		ContentFile:  e.settings.ContentFile,
	}
	if w, h, ok := termcap.Size(os.Stdout); ok {
		report.Width, report.Height = w, h
	}
	if err := e.ui.PrintDoctor(report); err != nil {
		return err
	}

	var problems int
	if _, err := loadContent(e.settings.ContentFile); err != nil {
		problems++
		e.ui.Error("%v", err)
	}

	if _, result, err := loadKeybinds(e.settings.KeybindsFile); err != nil {
		problems++
		e.ui.Error("keybinds: %v", err)
	} else {
		for _, w := range result.Warnings {
			e.ui.Warning("%s", w.Error())
		}
		for _, v := range result.Errors {
			problems++
			e.ui.Error("%s", v.Error())
		}
	}

	if problems > 0 {
		return errors.New("doctor found problems")
	}
	e.ui.Success("No problems found")
	return nil
}
