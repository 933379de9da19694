// SPDX-License-Identifier: MPL-2.0

package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCatalogMarkdown writes the whole catalog as one Markdown document with
// a section per group.
func WriteCatalogMarkdown(w io.Writer, c Catalog) {
	fmt.Fprintf(w, "# ERT configuration keywords\n\n")
	fmt.Fprintf(w, "%d keywords in %d groups.\n", c.KeywordCount, len(c.Groups))

	for _, g := range c.Groups {
		fmt.Fprintf(w, "\n## %s\n", g.Name)
		for _, k := range g.Keywords {
			fmt.Fprintln(w)
			writeKeyword(w, k, "###", "")
		}
	}
}

// KeywordMarkdown returns the documentation page of a single keyword.
func KeywordMarkdown(k Keyword, group string) string {
	var sb strings.Builder
	writeKeyword(&sb, k, "#", group)
	return sb.String()
}

func writeKeyword(w io.Writer, k Keyword, heading, group string) {
	fmt.Fprintf(w, "%s %s\n\n", heading, k.Name)

	if group != "" {
		fmt.Fprintf(w, "**Group:** %s  \n", group)
	}
	if k.Required {
		fmt.Fprintf(w, "**Required:** yes\n\n")
	} else {
		fmt.Fprintf(w, "**Required:** no\n\n")
	}

	fmt.Fprintf(w, "~~~\n%s\n~~~\n", k.Usage)

	if len(k.Arguments) > 0 {
		fmt.Fprintf(w, "\n| # | kind | modifiers | bounds |\n")
		fmt.Fprintf(w, "|---|------|-----------|--------|\n")
		for i, arg := range k.Arguments {
			fmt.Fprintf(w, "| %d | %s | %s | %s |\n", i+1, arg.Kind, modifiers(arg), bounds(arg))
		}
	}

	switch {
	case k.DocumentationURL != "":
		fmt.Fprintf(w, "\nDocumentation: <%s>\n", k.DocumentationURL)
	case k.DocumentationLink != "":
		fmt.Fprintf(w, "\nDocumentation: `%s`\n", k.DocumentationLink)
	}
}

func modifiers(arg Argument) string {
	var mods []string
	if arg.RestOfLine {
		mods = append(mods, "rest of line")
	}
	if arg.AllowSpace {
		mods = append(mods, "allow space")
	}
	if arg.BuiltIn {
		mods = append(mods, "built-in")
	}
	if arg.Optional {
		mods = append(mods, "optional")
	}
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ", ")
}

func bounds(arg Argument) string {
	switch {
	case arg.Min != nil && arg.Max != nil:
		return formatFloat(*arg.Min) + " to " + formatFloat(*arg.Max)
	case arg.Min != nil:
		return ">= " + formatFloat(*arg.Min)
	case arg.Max != nil:
		return "<= " + formatFloat(*arg.Max)
	default:
		return "-"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
