package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Dhanuzh/feurboot/internal/config"
	"github.com/Dhanuzh/feurboot/internal/locale"
	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the theme the bootstrap would apply",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			systemDark, err := theme.SignalFor(cfg.ColorScheme)
			if err != nil {
				return err
			}
			logger := log.Default()
			res := theme.NewResolver(openStore(cfg, logger), systemDark, logger).Resolve()

			scope := theme.NewScope()
			theme.Apply(scope, res.Mode)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode:   %s\n", res.Mode)
			fmt.Fprintf(out, "source: %s\n", res.Source)
			if res.Err != nil {
				fmt.Fprintf(out, "reason: %v\n", res.Err)
			}
			for _, name := range []string{theme.VarBackground, theme.VarPrimary, theme.VarSecondary} {
				v, _ := scope.Property(name)
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(v)).Render("    ")
				fmt.Fprintf(out, "%-18s %s %s\n", name, v, swatch)
			}
			return nil
		},
	}
}

func localeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locale",
		Short: "Show the active locale and its bootstrap messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := log.Default()
			d := &locale.Detector{
				Store:        openStore(cfg, logger),
				FollowSystem: cfg.Locale.FollowSystem,
				Logger:       logger,
			}
			l := d.Current()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locale: %s\n", l)
			for _, k := range locale.Keys() {
				msg, err := locale.Lookup(l, k)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-11s %s\n", k, msg)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p := cfg.Path(); p != "" {
				fmt.Fprintf(out, "# %s\n", p)
			}
			fmt.Fprintln(out, cfg.String())
			fmt.Fprintln(out)
			fmt.Fprint(out, config.GetConfigPrecedence())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.GetConfigDir(), "feurboot.json")
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := config.Load("")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.SaveConfig(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "feurboot %s (%s)\n", version, commit)
		},
	}
}
