// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/internal/export"
	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/types"
)

const docWordWrap = 80

// newDocCommand creates the `ertkw doc` command.
func newDocCommand(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "doc <KEYWORD>",
		Short: "Render the reference page of a keyword",
		Long: `Render the reference page of a keyword in the terminal.

The page style follows 'docs.style' from the configuration file. Use --raw
to print the Markdown source instead.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completeKeywordArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := app.lookupKeyword(args[0])
			if err != nil {
				return err
			}

			settings := app.settings()
			page := export.KeywordMarkdown(
				export.NewKeyword(def, settings.Docs.BaseURL.String()),
				def.Group().String(),
			)
			if raw {
				_, err := fmt.Fprint(app.stdout, page)
				return err
			}

			rendered, err := renderMarkdown(page, settings.Docs.Style)
			if err != nil {
				renderErr := issue.NewErrorContext().
					WithOperation("render documentation").
					WithResource(def.Name().String()).
					WithSuggestion("Run 'ertkw doc --raw " + def.Name().String() + "' to print the Markdown source").
					Wrap(err).
					Build()
				return newServiceError(renderErr, issue.DocRenderFailedId, types.ExitFailure)
			}
			_, err = fmt.Fprint(app.stdout, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")

	return cmd
}

// renderMarkdown renders a Markdown page with the configured glamour style.
func renderMarkdown(page string, style config.DocsStyle) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(docWordWrap)}
	if style == config.DocsStyleAuto || style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style.String()))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(page)
}
