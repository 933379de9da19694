// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/keyword"
	"github.com/kgreg1/ert/pkg/types"
)

// newListCommand creates the `ertkw list` command.
func newListCommand(app *App) *cobra.Command {
	var (
		group    string
		required bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog keywords",
		Long: `List the keywords of the ERT configuration catalog in registration order.

` + SubtitleStyle.Render("Examples:") + `
  ertkw list
  ertkw list --group Parametrization
  ertkw list --required`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := app.selectDefinitions(keyword.Group(group), required)
			if err != nil {
				return err
			}
			return writeKeywordTable(app.stdout, defs)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list keywords of this group")
	cmd.Flags().BoolVar(&required, "required", false, "only list required keywords")
	_ = cmd.RegisterFlagCompletionFunc("group", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, g := range app.Registry.Groups() {
			names = append(names, g.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// newShowCommand creates the `ertkw show` command.
func newShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "show <KEYWORD>",
		Short:             "Show the definition of a keyword",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completeKeywordArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := app.lookupKeyword(args[0])
			if err != nil {
				return err
			}
			writeKeywordDetail(app.stdout, def, app.settings().Docs.BaseURL.String())
			return nil
		},
	}
}

// newGroupsCommand creates the `ertkw groups` command.
func newGroupsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List keyword groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(app.Registry.Groups()))
			for _, g := range app.Registry.Groups() {
				rows = append(rows, []string{g.String(), strconv.Itoa(len(app.Registry.InGroup(g)))})
			}
			fmt.Fprintln(app.stdout, newTable("GROUP", "KEYWORDS").Rows(rows...).Render())
			return nil
		},
	}
}

// newCompleteCommand creates the `ertkw complete` command.
func newCompleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [PREFIX]",
		Short: "Print keywords starting with a prefix",
		Long: `Print every keyword whose name starts with PREFIX, one per line and
sorted alphabetically. The prefix is matched case-insensitively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, name := range app.Registry.Complete(prefix) {
				fmt.Fprintln(app.stdout, name)
			}
			return nil
		},
	}
}

// selectDefinitions filters the catalog by group and required flag.
func (a *App) selectDefinitions(group keyword.Group, requiredOnly bool) ([]keyword.ConfigurationLineDefinition, error) {
	defs := a.Registry.Definitions()
	if group != "" {
		defs = nil
		for _, g := range a.Registry.Groups() {
			if strings.EqualFold(g.String(), strings.TrimSpace(group.String())) {
				defs = a.Registry.InGroup(g)
				break
			}
		}
		if len(defs) == 0 {
			err := issue.NewErrorContext().
				WithOperation("list keywords").
				WithResource("group " + group.String()).
				WithSuggestion("Run 'ertkw groups' to see the available groups").
				Wrap(fmt.Errorf("no keywords in group %q", group)).
				Build()
			return nil, newServiceError(err, 0, types.ExitNotFound)
		}
	}
	if !requiredOnly {
		return defs, nil
	}

	out := defs[:0:0]
	for _, def := range defs {
		if def.IsRequired() {
			out = append(out, def)
		}
	}
	return out, nil
}

// lookupKeyword resolves a user-typed keyword name. Names are upper case in
// the catalog, so the argument is upper-cased before the lookup.
func (a *App) lookupKeyword(arg string) (keyword.ConfigurationLineDefinition, error) {
	name := keyword.KeywordName(strings.ToUpper(strings.TrimSpace(arg)))
	def, err := a.Registry.Lookup(name)
	if err == nil {
		return def, nil
	}

	ctx := issue.NewErrorContext().
		WithOperation("look up keyword").
		WithResource(name.String()).
		Wrap(err)
	if similar := a.similarKeywords(name); len(similar) > 0 {
		ctx.WithSuggestionf("Did you mean: %s", strings.Join(similar, ", "))
	} else {
		ctx.WithSuggestion("Run 'ertkw list' to browse the catalog")
	}
	return keyword.ConfigurationLineDefinition{}, newServiceError(ctx.Build(), issue.KeywordNotFoundId, types.ExitNotFound)
}

// similarKeywords suggests catalog names sharing the longest possible prefix
// with name, at most five of them.
func (a *App) similarKeywords(name keyword.KeywordName) []string {
	const maxSuggestions = 5

	prefix := name.String()
	for len(prefix) > 0 {
		if matches := a.Registry.Complete(prefix); len(matches) > 0 {
			out := make([]string, 0, maxSuggestions)
			for _, m := range matches {
				if len(out) == maxSuggestions {
					break
				}
				out = append(out, m.String())
			}
			return out
		}
		prefix = prefix[:len(prefix)-1]
	}
	return nil
}

// completeKeywordArg completes a single keyword argument from the catalog.
func (a *App) completeKeywordArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range a.Registry.Complete(toComplete) {
		out = append(out, name.String())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

func writeKeywordTable(w io.Writer, defs []keyword.ConfigurationLineDefinition) error {
	if len(defs) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No keywords match."))
		return nil
	}

	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		req := ""
		if def.IsRequired() {
			req = "yes"
		}
		rows = append(rows, []string{def.Name().String(), def.Group().String(), req, def.Usage()})
	}
	_, err := fmt.Fprintln(w, newTable("KEYWORD", "GROUP", "REQUIRED", "USAGE").Rows(rows...).Render())
	return err
}

func writeKeywordDetail(w io.Writer, def keyword.ConfigurationLineDefinition, baseURL string) {
	fmt.Fprintln(w, TitleStyle.Render(def.Name().String())+" "+SubtitleStyle.Render("("+def.Group().String()+")"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Usage:    %s\n", CmdStyle.Render(def.Usage()))
	if def.IsRequired() {
		fmt.Fprintf(w, "  Required: %s\n", SuccessStyle.Render("yes"))
	} else {
		fmt.Fprintf(w, "  Required: %s\n", VerboseStyle.Render("no"))
	}

	if def.ArgumentCount() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SubtitleStyle.Render("  Arguments:"))
		for i, arg := range def.Arguments() {
			line := fmt.Sprintf("    %d. %s", i+1, arg.Kind)
			var details []string
			if mods := arg.Modifiers(); len(mods) > 0 {
				details = append(details, strings.Join(mods, ", "))
			}
			if b := arg.Bounds.String(); b != "" {
				details = append(details, b)
			}
			if len(details) > 0 {
				line += "  " + VerboseStyle.Render(strings.Join(details, " "))
			}
			fmt.Fprintln(w, line)
		}
	}

	if link := def.DocumentationLink(); link != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Docs:     %s\n", CmdStyle.Render(link.Resolve(baseURL)))
	}
}
