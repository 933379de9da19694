// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/keyword"
	"github.com/kgreg1/ert/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the ertkw command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "ertkw",
		Short: "Browse the ERT configuration keyword catalog",
		Long: TitleStyle.Render("ertkw") + SubtitleStyle.Render(" - Browse the ERT configuration keyword catalog") + `

ertkw knows every keyword an ERT configuration file may contain: its
group, the arguments it takes, whether it is required and where it is
documented.

` + SubtitleStyle.Render("Examples:") + `
  ertkw list                         List every keyword
  ertkw list --group Parametrization List the keywords of one group
  ertkw show GEN_KW                  Show the argument layout of GEN_KW
  ertkw doc FIELD                    Render the FIELD reference page
  ertkw export --format yaml         Export the catalog as YAML`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initRootConfig(cmd.Context(), cfgFile, verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ertkw/config.cue)")

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newDocCommand(app),
		newGroupsCommand(app),
		newCompleteCommand(app),
		newExportCommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the root command. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		code := types.ExitFailure
		svcErr := newServiceError(err, 0, code)
		if errors.Is(err, keyword.ErrDuplicateKeyword) {
			svcErr.IssueID = issue.DuplicateKeywordId
		}
		renderServiceError(os.Stderr, svcErr, true)
		os.Exit(int(code))
	}

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// handleError prints command failures. ServiceErrors carry their own
// rendering; anything else gets fang's default treatment.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, a.verbose)
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return types.ExitFailure
}

// initRootConfig loads the configuration file and environment overrides, then
// applies logging and color settings. A broken configuration is reported as a
// warning and the defaults are used instead.
func (a *App) initRootConfig(ctx context.Context, cfgFile string, verboseFlag bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verboseFlag))
		cfg = config.DefaultConfig()
	}

	a.cfgFile = cfgFile
	a.cfg = cfg
	a.verbose = verboseFlag || cfg.UI.Verbose

	configureLogging(a.stderr, cfg.Log.Level, a.verbose)
	applyColorScheme(cfg.UI.ColorScheme)
	return nil
}

// configureLogging installs a charm logger as the slog default handler.
func configureLogging(w io.Writer, level config.LogLevel, verbose bool) {
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: "ertkw",
		Level:  lvl,
	})
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
