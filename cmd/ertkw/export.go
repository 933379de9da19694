// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/internal/export"
	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/types"
)

// newExportCommand creates the `ertkw export` command.
func newExportCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	formats := make([]string, 0, len(config.ExportFormats()))
	for _, f := range config.ExportFormats() {
		formats = append(formats, f.String())
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the keyword catalog",
		Long: `Export the whole keyword catalog as ` + strings.Join(formats, ", ") + `.

The default format comes from 'export.format' in the configuration file.

` + SubtitleStyle.Render("Examples:") + `
  ertkw export
  ertkw export --format yaml
  ertkw export --format markdown -o keywords.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.settings()
			f := settings.Export.Format
			if format != "" {
				f = config.ExportFormat(strings.ToLower(format))
			}
			return app.exportCatalog(f, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format ("+strings.Join(formats, "|")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// exportCatalog encodes the catalog and writes it to path, or to stdout when
// path is empty. The file is only written once encoding succeeded.
func (a *App) exportCatalog(format config.ExportFormat, path string) error {
	catalog := export.FromRegistry(a.Registry, a.settings().Docs.BaseURL.String())

	var buf bytes.Buffer
	if err := export.Encode(&buf, catalog, format); err != nil {
		if errors.Is(err, config.ErrInvalidExportFormat) {
			ae := issue.NewErrorContext().
				WithOperation("export catalog").
				WithSuggestion("Supported formats: json, yaml, toml, cue, markdown").
				Wrap(err).
				Build()
			return newServiceError(ae, issue.UnknownExportFormatId, types.ExitUsage)
		}
		return newServiceError(issue.WrapWithContext(err, "export catalog", format.String()), issue.ExportFailedId, types.ExitFailure)
	}

	if path == "" {
		if _, err := a.stdout.Write(buf.Bytes()); err != nil {
			return newServiceError(issue.WrapWithContext(err, "export catalog", "stdout"), issue.ExportFailedId, types.ExitFailure)
		}
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		ae := issue.NewErrorContext().
			WithOperation("export catalog").
			WithResource(path).
			WithSuggestion("Check that the directory exists and is writable").
			Wrap(err).
			Build()
		return newServiceError(ae, issue.ExportFailedId, types.ExitFailure)
	}

	slog.Debug("Catalog exported.", "format", format, "path", path, "keywords", catalog.KeywordCount)
	fmt.Fprintln(a.stderr, SuccessStyle.Render(fmt.Sprintf("Exported %d keywords to %s", catalog.KeywordCount, path)))
	return nil
}
