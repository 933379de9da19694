// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	KeywordNotFoundId Id = iota + 1
	DuplicateKeywordId
	ConfigLoadFailedId
	UnknownExportFormatId
	ExportFailedId
	DocRenderFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page with the glamour style at stylePath
// ("dark", "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	keywordNotFoundIssue = &Issue{
		id: KeywordNotFoundId,
		mdMsg: `
# Keyword not found!

The keyword you asked for is not part of the ERT configuration keyword catalog.

## Things you can try:
- Keyword names are upper case, e.g. ` + "`GEN_KW`" + ` rather than ` + "`gen_kw`" + `
- List keywords that start with the same letters:
~~~
$ ertkw complete GEN_
~~~

- Browse the catalog group by group:
~~~
$ ertkw groups
$ ertkw list --group Parametrization
~~~`,
		docLinks: []HttpLink{"https://ert.readthedocs.io/en/latest/reference/configuration/keywords.html"},
	}

	duplicateKeywordIssue = &Issue{
		id: DuplicateKeywordId,
		mdMsg: `
# Keyword catalog is inconsistent!

Two keyword groups declare the same keyword name. The catalog is built once at
startup and refuses to continue with an ambiguous definition.

## Things you can try:
- This is a defect in ertkw itself; please report it with the output of:
~~~
$ ertkw --verbose groups
~~~`,
		docLinks: []HttpLink{"https://github.com/kgreg1/ert/issues"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The ertkw configuration file could not be read or does not match the schema.

## Things you can try:
- Show where ertkw looks for its configuration:
~~~
$ ertkw config path
~~~

- Print a valid configuration with the defaults:
~~~
$ ertkw config dump
~~~

## Example config.cue:
~~~cue
ui: {
	color_scheme: "dark"
}
log: {
	level: "info"
}
export: {
	format: "yaml"
}
~~~`,
		docLinks: []HttpLink{"https://github.com/kgreg1/ert#configuration"},
		extLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	unknownExportFormatIssue = &Issue{
		id: UnknownExportFormatId,
		mdMsg: `
# Unknown export format!

The keyword catalog can be exported as json, yaml, toml, cue or markdown.

## Things you can try:
- Pick one of the supported formats:
~~~
$ ertkw export --format yaml
~~~

- Set a default in your config file:
~~~cue
export: {
	format: "toml"
}
~~~`,
		docLinks: []HttpLink{"https://github.com/kgreg1/ert#export"},
	}

	exportFailedIssue = &Issue{
		id: ExportFailedId,
		mdMsg: `
# Export failed!

The keyword catalog was encoded but could not be written.

## Things you can try:
- Check that the output directory exists and is writable
- Write to stdout and redirect instead:
~~~
$ ertkw export --format json > keywords.json
~~~`,
		docLinks: []HttpLink{"https://github.com/kgreg1/ert#export"},
	}

	docRenderFailedIssue = &Issue{
		id: DocRenderFailedId,
		mdMsg: `
# Could not render keyword documentation!

The terminal renderer failed to draw the keyword page.

## Things you can try:
- Use the plain style:
~~~cue
docs: {
	style: "notty"
}
~~~

- Print the raw Markdown:
~~~
$ ertkw doc --raw FIELD
~~~`,
		docLinks: []HttpLink{"https://github.com/kgreg1/ert#configuration"},
		extLinks: []HttpLink{"https://github.com/charmbracelet/glamour#styles"},
	}

	issues = map[Id]*Issue{
		keywordNotFoundIssue.Id():     keywordNotFoundIssue,
		duplicateKeywordIssue.Id():    duplicateKeywordIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		unknownExportFormatIssue.Id(): unknownExportFormatIssue,
		exportFailedIssue.Id():        exportFailedIssue,
		docRenderFailedIssue.Id():     docRenderFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
