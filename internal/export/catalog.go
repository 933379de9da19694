// SPDX-License-Identifier: MPL-2.0

package export

import (
	"github.com/kgreg1/ert/pkg/keyword"
)

// SchemaVersion identifies the layout of the exported catalog.
const SchemaVersion = "1"

type (
	// Catalog is the exported form of a keyword registry, grouped in
	// registration order.
	Catalog struct {
		SchemaVersion string  `json:"schema_version" toml:"schema_version"`
		KeywordCount  int     `json:"keyword_count" toml:"keyword_count"`
		Groups        []Group `json:"groups" toml:"groups"`
	}

	// Group is one keyword group of the catalog.
	Group struct {
		Name     string    `json:"name" toml:"name"`
		Keywords []Keyword `json:"keywords" toml:"keywords"`
	}

	// Keyword is the exported form of a ConfigurationLineDefinition.
	Keyword struct {
		Name              string     `json:"name" toml:"name"`
		Required          bool       `json:"required" toml:"required"`
		Usage             string     `json:"usage" toml:"usage"`
		DocumentationLink string     `json:"documentation_link,omitempty" toml:"documentation_link,omitempty"`
		DocumentationURL  string     `json:"documentation_url,omitempty" toml:"documentation_url,omitempty"`
		Arguments         []Argument `json:"arguments" toml:"arguments"`
	}

	// Argument is the exported form of keyword.Argument. Modifiers that are
	// not set are left out.
	Argument struct {
		Kind       string   `json:"kind" toml:"kind"`
		RestOfLine bool     `json:"rest_of_line,omitempty" toml:"rest_of_line,omitempty"`
		AllowSpace bool     `json:"allow_space,omitempty" toml:"allow_space,omitempty"`
		BuiltIn    bool     `json:"built_in,omitempty" toml:"built_in,omitempty"`
		Optional   bool     `json:"optional,omitempty" toml:"optional,omitempty"`
		Min        *float64 `json:"min,omitempty" toml:"min,omitempty"`
		Max        *float64 `json:"max,omitempty" toml:"max,omitempty"`
	}
)

// FromRegistry builds the catalog of r. Documentation links are resolved
// against baseURL when it is not empty.
func FromRegistry(r *keyword.Registry, baseURL string) Catalog {
	c := Catalog{SchemaVersion: SchemaVersion}
	for _, g := range r.Groups() {
		defs := r.InGroup(g)
		group := Group{Name: g.String(), Keywords: make([]Keyword, 0, len(defs))}
		for _, def := range defs {
			group.Keywords = append(group.Keywords, NewKeyword(def, baseURL))
		}
		c.KeywordCount += len(defs)
		c.Groups = append(c.Groups, group)
	}
	return c
}

// NewKeyword converts a single definition.
func NewKeyword(def keyword.ConfigurationLineDefinition, baseURL string) Keyword {
	k := Keyword{
		Name:              def.Name().String(),
		Required:          def.IsRequired(),
		Usage:             def.Usage(),
		DocumentationLink: def.DocumentationLink().String(),
		Arguments:         make([]Argument, 0, def.ArgumentCount()),
	}
	if baseURL != "" && def.DocumentationLink() != "" {
		k.DocumentationURL = def.DocumentationLink().Resolve(baseURL)
	}
	for _, arg := range def.Arguments() {
		k.Arguments = append(k.Arguments, newArgument(arg))
	}
	return k
}

func newArgument(arg keyword.Argument) Argument {
	out := Argument{
		Kind:       arg.Kind.String(),
		RestOfLine: arg.RestOfLine,
		AllowSpace: arg.AllowSpace,
		BuiltIn:    arg.BuiltIn,
		Optional:   arg.Optional,
	}
	if arg.Bounds.HasMin {
		v := arg.Bounds.Min
		out.Min = &v
	}
	if arg.Bounds.HasMax {
		v := arg.Bounds.Max
		out.Max = &v
	}
	return out
}
