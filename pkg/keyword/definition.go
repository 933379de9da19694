// SPDX-License-Identifier: MPL-2.0

package keyword

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// Standard keyword groups, listed in registration order.
const (
	GroupEnsemble          Group = "Ensemble"
	GroupRun               Group = "Run"
	GroupEclipse           Group = "Eclipse"
	GroupQueueSystem       Group = "Queue System"
	GroupSimulationControl Group = "Simulation Control"
	GroupParametrization   Group = "Parametrization"
	GroupEnkfControl       Group = "EnKF Control"
	GroupAnalysisModule    Group = "Analysis Module"
	GroupPlot              Group = "Plot"
	GroupWorkflow          Group = "Workflow"
	GroupReport            Group = "Report"
	GroupAdvanced          Group = "Advanced"
	GroupQC                Group = "QC"
	GroupUnixEnvironment   Group = "Unix Environment"
)

var (
	// ErrInvalidKeywordName is the sentinel error wrapped by InvalidKeywordNameError.
	ErrInvalidKeywordName = errors.New("invalid keyword name")
	// ErrInvalidGroup is the sentinel error wrapped by InvalidGroupError.
	ErrInvalidGroup = errors.New("invalid group")
	// ErrInvalidDocumentationLink is the sentinel error wrapped by InvalidDocumentationLinkError.
	ErrInvalidDocumentationLink = errors.New("invalid documentation link")
	// ErrInvalidDefinition is the sentinel error wrapped by InvalidDefinitionError.
	ErrInvalidDefinition = errors.New("invalid configuration line definition")

	keywordNamePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

type (
	// KeywordName is the reserved identifier that starts a configuration line,
	// e.g. FIELD or GEN_KW. Names are upper case letters, digits and underscores,
	// starting with a letter.
	KeywordName string

	// InvalidKeywordNameError is returned when a KeywordName does not match
	// the keyword naming rules.
	InvalidKeywordNameError struct {
		Value KeywordName
	}

	// Group is the category a keyword is listed under for documentation and UI purposes.
	// Any non-blank label is accepted; the Group* constants name the standard ones.
	Group string

	// InvalidGroupError is returned when a Group is empty or whitespace-only.
	InvalidGroupError struct {
		Value Group
	}

	// DocumentationLink is a reference into the keyword documentation,
	// relative to the documentation root (e.g. "parametrization/field").
	// The zero value means the keyword has no documentation page.
	DocumentationLink string

	// InvalidDocumentationLinkError is returned when a DocumentationLink is
	// non-empty but whitespace-only, or contains whitespace.
	InvalidDocumentationLinkError struct {
		Value DocumentationLink
	}

	// InvalidDefinitionError collects the field-level errors of a LineSpec.
	InvalidDefinitionError struct {
		Name        KeywordName
		FieldErrors []error
	}

	// LineSpec holds the inputs of NewConfigurationLine.
	LineSpec struct {
		Name              KeywordName
		Arguments         []Argument
		DocumentationLink DocumentationLink
		Required          bool
		Group             Group
	}

	// ConfigurationLineDefinition describes one recognized keyword line.
	// It is immutable once built by NewConfigurationLine.
	ConfigurationLineDefinition struct {
		name      KeywordName
		arguments []Argument
		docLink   DocumentationLink
		required  bool
		group     Group
	}
)

// String returns the string representation of the KeywordName.
func (n KeywordName) String() string { return string(n) }

// IsValid returns whether the KeywordName follows the keyword naming rules.
func (n KeywordName) IsValid() (bool, []error) {
	if !keywordNamePattern.MatchString(string(n)) {
		return false, []error{&InvalidKeywordNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidKeywordNameError.
func (e *InvalidKeywordNameError) Error() string {
	return fmt.Sprintf("invalid keyword name %q: must match %s", e.Value, keywordNamePattern)
}

// Unwrap returns ErrInvalidKeywordName for errors.Is() compatibility.
func (e *InvalidKeywordNameError) Unwrap() error { return ErrInvalidKeywordName }

// String returns the string representation of the Group.
func (g Group) String() string { return string(g) }

// IsValid returns whether the Group is a non-blank label.
func (g Group) IsValid() (bool, []error) {
	if strings.TrimSpace(string(g)) == "" {
		return false, []error{&InvalidGroupError{Value: g}}
	}
	return true, nil
}

// Error implements the error interface for InvalidGroupError.
func (e *InvalidGroupError) Error() string {
	return fmt.Sprintf("invalid group %q: must not be empty", e.Value)
}

// Unwrap returns ErrInvalidGroup for errors.Is() compatibility.
func (e *InvalidGroupError) Unwrap() error { return ErrInvalidGroup }

// String returns the string representation of the DocumentationLink.
func (l DocumentationLink) String() string { return string(l) }

// IsValid returns whether the DocumentationLink is valid.
// The zero value is valid. Non-zero values must not contain whitespace.
func (l DocumentationLink) IsValid() (bool, []error) {
	if l == "" {
		return true, nil
	}
	if strings.ContainsFunc(string(l), unicode.IsSpace) {
		return false, []error{&InvalidDocumentationLinkError{Value: l}}
	}
	return true, nil
}

// Resolve joins the link onto a documentation base URL. An empty base returns
// the link unchanged.
func (l DocumentationLink) Resolve(base string) string {
	if base == "" || l == "" {
		return string(l)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(string(l), "/")
}

// Error implements the error interface for InvalidDocumentationLinkError.
func (e *InvalidDocumentationLinkError) Error() string {
	return fmt.Sprintf("invalid documentation link %q: must not contain whitespace", e.Value)
}

// Unwrap returns ErrInvalidDocumentationLink for errors.Is() compatibility.
func (e *InvalidDocumentationLinkError) Unwrap() error { return ErrInvalidDocumentationLink }

// Error implements the error interface for InvalidDefinitionError.
func (e *InvalidDefinitionError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid definition of keyword %q: %s", e.Name, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidDefinition for errors.Is() compatibility.
func (e *InvalidDefinitionError) Unwrap() error { return ErrInvalidDefinition }

// IsValid returns whether every field of the LineSpec is valid.
func (s LineSpec) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := s.Name.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := s.Group.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := s.DocumentationLink.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for i, arg := range s.Arguments {
		errs = append(errs, arg.validate(i, len(s.Arguments))...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidDefinitionError{Name: s.Name, FieldErrors: errs}}
	}
	return true, nil
}

// NewConfigurationLine validates spec and returns the immutable definition it describes.
func NewConfigurationLine(spec LineSpec) (ConfigurationLineDefinition, error) {
	if valid, errs := spec.IsValid(); !valid {
		return ConfigurationLineDefinition{}, errs[0]
	}
	return ConfigurationLineDefinition{
		name:      spec.Name,
		arguments: slices.Clone(spec.Arguments),
		docLink:   spec.DocumentationLink,
		required:  spec.Required,
		group:     spec.Group,
	}, nil
}

// Name returns the keyword name.
func (d ConfigurationLineDefinition) Name() KeywordName { return d.name }

// Arguments returns a copy of the positional argument list.
func (d ConfigurationLineDefinition) Arguments() []Argument { return slices.Clone(d.arguments) }

// Argument returns the argument at index i, or false if there is none.
func (d ConfigurationLineDefinition) Argument(i int) (Argument, bool) {
	if i < 0 || i >= len(d.arguments) {
		return Argument{}, false
	}
	return d.arguments[i], true
}

// ArgumentCount returns the number of declared arguments.
func (d ConfigurationLineDefinition) ArgumentCount() int { return len(d.arguments) }

// RequiredArgumentCount returns the number of arguments that are not optional.
func (d ConfigurationLineDefinition) RequiredArgumentCount() int {
	n := 0
	for _, a := range d.arguments {
		if !a.Optional {
			n++
		}
	}
	return n
}

// DocumentationLink returns the documentation reference.
func (d ConfigurationLineDefinition) DocumentationLink() DocumentationLink { return d.docLink }

// IsRequired reports whether a configuration must contain this keyword.
func (d ConfigurationLineDefinition) IsRequired() bool { return d.required }

// Group returns the keyword group.
func (d ConfigurationLineDefinition) Group() Group { return d.group }

// IsZero reports whether d is the zero definition.
func (d ConfigurationLineDefinition) IsZero() bool { return d.name == "" }

// Usage renders the line synopsis, e.g. "FIELD <string> <string> <string...>".
func (d ConfigurationLineDefinition) Usage() string {
	var sb strings.Builder
	sb.WriteString(string(d.name))
	for _, a := range d.arguments {
		token := string(a.Kind)
		if a.RestOfLine {
			token += "..."
		}
		if a.Optional {
			fmt.Fprintf(&sb, " [%s]", token)
		} else {
			fmt.Fprintf(&sb, " <%s>", token)
		}
	}
	return sb.String()
}
