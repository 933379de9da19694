// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/types"
)

// newConfigCommand creates the `ertkw config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ertkw configuration",
		Long: `Manage ertkw configuration.

Configuration is stored in:
  - Linux: ~/.config/ertkw/config.cue
  - macOS: ~/Library/Application Support/ertkw/config.cue
  - Windows: %APPDATA%\ertkw\config.cue

Every key can be overridden with an ` + config.EnvPrefix + `_ environment variable,
e.g. ` + config.EnvPrefix + `_EXPORT_FORMAT=yaml or ` + config.EnvPrefix + `_LOG_LEVEL=debug.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath(cmd.Context())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(app.stdout, config.GenerateCUE(app.settings()))
			return err
		},
	})

	return cfgCmd
}

func (a *App) showConfig(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return newServiceError(err, issue.ConfigLoadFailedId, types.ExitConfig)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(a.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)

	if path == "" {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(a.stdout, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("docs"))
	fmt.Fprintf(a.stdout, "  base_url: %s\n", valueStyle.Render(cfg.Docs.BaseURL.String()))
	fmt.Fprintf(a.stdout, "  style: %s\n", valueStyle.Render(cfg.Docs.Style.String()))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("export"))
	fmt.Fprintf(a.stdout, "  format: %s\n", valueStyle.Render(cfg.Export.Format.String()))

	return nil
}

func (a *App) initConfig() error {
	var dir string
	if a.cfgFile != "" {
		dir = filepath.Dir(a.cfgFile)
	}

	path, created, err := config.CreateDefaultConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(a.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func (a *App) showConfigPath(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(a.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	_, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	switch {
	case err != nil:
		fmt.Fprintf(a.stdout, "In use: %s\n", WarningStyle.Render("(unreadable, using defaults)"))
	case path == "":
		fmt.Fprintf(a.stdout, "In use: %s\n", SubtitleStyle.Render("(none, using defaults)"))
	default:
		fmt.Fprintf(a.stdout, "In use: %s\n", path)
	}

	return nil
}
