// Package cli defines the command-line interface for flicks.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/flicks/internal/catalog"
	"github.com/mmcdole/flicks/internal/config"
	"github.com/mmcdole/flicks/internal/logging"
	"github.com/mmcdole/flicks/internal/menu"
	"github.com/mmcdole/flicks/internal/prompt"
	"github.com/mmcdole/flicks/internal/store"
	"github.com/mmcdole/flicks/internal/tui"
)

// Options stores command-line overrides for the loaded configuration.
type Options struct {
	ConfigPath string
	LogLevel   string
	Plain      bool
}

// Execute builds the root command, runs it with the provided args and streams, and returns any error.
func Execute(args []string, version string, in io.Reader, out io.Writer) error {
	cmd := newRootCommand(&Options{}, version, in, out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// newRootCommand constructs the root cobra.Command with its flags.
func newRootCommand(opts *Options, version string, in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "flicks",
		Short:         "flicks is an interactive movie catalog",
		Long:          "flicks keeps an in-memory catalog of movies for the current session: add, rate, search, list, and remove entries.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, in, out)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config.yaml (default searches ~/.config/flicks and .)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Use line prompts instead of the full-screen interface")

	return cmd
}

func run(opts *Options, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Plain {
		cfg.UI.Mode = config.UIModePlain
	}

	logger, err := logging.SetupLogger(logging.Options{File: cfg.Logging.File, Level: cfg.Logging.Level})
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = logging.NullLogger()
	}
	slog.SetDefault(logger)

	svc := catalog.NewService(store.NewMemoryStore(), logger)
	runner := menu.NewRunner(svc, cfg.UI.Suggestions, logger)

	if useTUI(cfg.UI.Mode, in, out) {
		logger.Info("starting TUI")
		p := tea.NewProgram(tui.NewModel(runner), tea.WithInput(in), tea.WithOutput(out))
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", "error", err)
			return fmt.Errorf("TUI error: %w", err)
		}
	} else {
		logger.Info("starting prompt loop")
		if err := prompt.New(runner, in, out, logger).Run(); err != nil {
			logger.Error("prompt loop error", "error", err)
			return err
		}
	}

	logger.Info("shutting down", "movies", svc.Count())
	return nil
}

// useTUI decides whether the full-screen interface should run
func useTUI(mode config.UIMode, in io.Reader, out io.Writer) bool {
	switch mode {
	case config.UIModeTUI:
		return true
	case config.UIModePlain:
		return false
	default:
		return isTerminal(in) && isTerminal(out)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
