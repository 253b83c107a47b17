package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	// earlyinit must be listed before bubbletea so its init() runs first and
	// pins lipgloss's background answer when FEURBOOT_COLOR_SCHEME forces one.
	_ "github.com/Dhanuzh/feurboot/internal/earlyinit"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Dhanuzh/feurboot/internal/bootstrap"
	"github.com/Dhanuzh/feurboot/internal/config"
	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/engine"
	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/splash"
	"github.com/Dhanuzh/feurboot/internal/storage"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

var errInterrupted = errors.New("interrupted")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "feurboot",
		Short: "feurboot - bootstrap shim for the feur app",
		Long: `feurboot prepares the app before its engine starts: it shows the
loading texts in the saved locale, applies the saved light/dark theme,
then starts the engine and hands the terminal over to it.`,
		RunE:          runBoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ~/.config/feurboot/feurboot.*)")
	rootCmd.PersistentFlags().String("prefs", "", "Persisted preferences file")
	rootCmd.PersistentFlags().String("color-scheme", "", "System color scheme: auto, dark or light")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("splash", "", "Draw the splash screen: auto, on or off")

	// Sub-commands
	rootCmd.AddCommand(
		themeCmd(),
		localeCmd(),
		configCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads, overrides and validates the config, and sets the log level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	return cfg, nil
}

// applyFlags overrides config values with flags that were set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("prefs"); v != "" {
		cfg.PrefsFile = v
	}
	if v, _ := cmd.Flags().GetString("color-scheme"); v != "" {
		cfg.ColorScheme = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if f := cmd.Flags().Lookup("splash"); f != nil && f.Changed {
		cfg.Splash = f.Value.String()
	}
}

// openStore opens the preferences file. An unreadable file is logged and
// treated as empty so a broken file never blocks bootstrap.
func openStore(cfg *config.Config, logger *log.Logger) storage.Store {
	f, err := storage.OpenFile(cfg.PrefsFile)
	if err != nil {
		logger.Error("could not open preferences", "path", cfg.PrefsFile, "err", err)
		return storage.Empty
	}
	return f
}

func useSplash(mode string) bool {
	switch mode {
	case config.SplashOn:
		return true
	case config.SplashOff:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// runBoot is the default command - runs the full bootstrap
func runBoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := log.Default()

	systemDark, err := theme.SignalFor(cfg.ColorScheme)
	if err != nil {
		return err
	}

	opts := bootstrap.Options{
		Store:              openStore(cfg, logger),
		SystemDark:         systemDark,
		FollowSystemLocale: cfg.Locale.FollowSystem,
		ReadyTimeout:       cfg.Engine.ReadyTimeout,
		Logger:             logger,
	}
	eng := &engine.Command{Argv: cfg.Engine.Command, Dir: cfg.Engine.Dir}

	if !useSplash(cfg.Splash) {
		opts.Document = display.NewWriter(cmd.OutOrStdout(), display.AppMessage, display.LoadingMessage)
		opts.Surface = theme.NewScope()
		b := bootstrap.New(opts)
		b.ApplyTheme()
		return b.HandleLoading(cmd.Context(), eng)
	}
	return runWithSplash(cmd.Context(), opts, eng)
}

// runWithSplash draws the splash while the bootstrap runs, and tears it down
// right before the engine takes the terminal.
func runWithSplash(ctx context.Context, opts bootstrap.Options, eng *engine.Command) error {
	scope := theme.NewScope()
	p := tea.NewProgram(splash.New(scope), tea.WithAltScreen())
	screen := splash.NewScreen(p, scope)
	opts.Document = screen
	opts.Surface = screen

	splashDone := make(chan struct{})
	eng.BeforeRun = func() {
		screen.Close()
		<-splashDone
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(splashDone)
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("splash error: %w", err)
		}
		if m, ok := final.(splash.Model); ok && m.Interrupted() {
			return errInterrupted
		}
		return nil
	})
	g.Go(func() error {
		b := bootstrap.New(opts)
		b.ApplyTheme()
		err := b.HandleLoading(gctx, eng)
		screen.Close()
		return err
	})
	return g.Wait()
}
