// SPDX-License-Identifier: MPL-2.0

package keyword

import (
	"errors"
	"testing"
)

func fieldSpec() LineSpec {
	return LineSpec{
		Name:              "FIELD",
		Arguments:         []Argument{String(), String(), String(RestOfLine(), AllowSpace())},
		DocumentationLink: "parametrization/field",
		Group:             GroupParametrization,
	}
}

func TestKeywordName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name KeywordName
		want bool
	}{
		{"FIELD", true},
		{"GEN_KW", true},
		{"ENKF_RERUN", true},
		{"X1", true},
		{"", false},
		{"field", false},
		{"1FIELD", false},
		{"_FIELD", false},
		{"GEN KW", false},
		{"GEN-KW", false},
	}

	for _, tt := range tests {
		valid, errs := tt.name.IsValid()
		if valid != tt.want {
			t.Errorf("KeywordName(%q).IsValid() = %v, want %v", tt.name, valid, tt.want)
		}
		if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidKeywordName)) {
			t.Errorf("KeywordName(%q).IsValid() errors = %v, want ErrInvalidKeywordName", tt.name, errs)
		}
	}
}

func TestGroup_IsValid(t *testing.T) {
	t.Parallel()

	if valid, _ := GroupParametrization.IsValid(); !valid {
		t.Error("GroupParametrization should be valid")
	}
	for _, g := range []Group{"", "  ", "\t"} {
		valid, errs := g.IsValid()
		if valid {
			t.Errorf("Group(%q).IsValid() = true, want false", g)
			continue
		}
		var groupErr *InvalidGroupError
		if !errors.As(errs[0], &groupErr) {
			t.Errorf("error should be *InvalidGroupError, got %T", errs[0])
		}
	}
}

func TestDocumentationLink(t *testing.T) {
	t.Parallel()

	t.Run("validity", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			link DocumentationLink
			want bool
		}{
			{"", true},
			{"parametrization/field", true},
			{"   ", false},
			{"parametrization/ field", false},
			{"\v", false},
			{"\f", false},
			{"parametrization/\u00a0field", false},
		}
		for _, tt := range tests {
			valid, errs := tt.link.IsValid()
			if valid != tt.want {
				t.Errorf("DocumentationLink(%q).IsValid() = %v, want %v", tt.link, valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidDocumentationLink) {
				t.Errorf("error should wrap ErrInvalidDocumentationLink, got %v", errs[0])
			}
		}
	})

	t.Run("resolve", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			link DocumentationLink
			base string
			want string
		}{
			{"parametrization/field", "", "parametrization/field"},
			{"parametrization/field", "https://docs.example.org/keywords", "https://docs.example.org/keywords/parametrization/field"},
			{"/parametrization/field", "https://docs.example.org/keywords/", "https://docs.example.org/keywords/parametrization/field"},
			{"", "https://docs.example.org", ""},
		}
		for _, tt := range tests {
			if got := tt.link.Resolve(tt.base); got != tt.want {
				t.Errorf("DocumentationLink(%q).Resolve(%q) = %q, want %q", tt.link, tt.base, got, tt.want)
			}
		}
	})
}

func TestNewConfigurationLine(t *testing.T) {
	t.Parallel()

	def, err := NewConfigurationLine(fieldSpec())
	if err != nil {
		t.Fatalf("NewConfigurationLine() error = %v", err)
	}
	if def.Name() != "FIELD" {
		t.Errorf("Name() = %q, want FIELD", def.Name())
	}
	if def.ArgumentCount() != 3 {
		t.Errorf("ArgumentCount() = %d, want 3", def.ArgumentCount())
	}
	if def.RequiredArgumentCount() != 3 {
		t.Errorf("RequiredArgumentCount() = %d, want 3", def.RequiredArgumentCount())
	}
	if def.IsRequired() {
		t.Error("IsRequired() = true, want false")
	}
	if def.Group() != GroupParametrization {
		t.Errorf("Group() = %q, want %q", def.Group(), GroupParametrization)
	}
	if def.DocumentationLink() != "parametrization/field" {
		t.Errorf("DocumentationLink() = %q", def.DocumentationLink())
	}
	if got, want := def.Usage(), "FIELD <string> <string> <string...>"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	last, ok := def.Argument(2)
	if !ok || !last.RestOfLine || !last.AllowSpace {
		t.Errorf("Argument(2) = %+v, %v; want rest_of_line and allow_space", last, ok)
	}
	if _, ok := def.Argument(3); ok {
		t.Error("Argument(3) should not exist")
	}
	if _, ok := def.Argument(-1); ok {
		t.Error("Argument(-1) should not exist")
	}
}

func TestConfigurationLineDefinition_Immutable(t *testing.T) {
	t.Parallel()

	spec := fieldSpec()
	def, err := NewConfigurationLine(spec)
	if err != nil {
		t.Fatalf("NewConfigurationLine() error = %v", err)
	}

	// Mutating the LineSpec after construction must not leak into the definition.
	spec.Arguments[0] = Integer()
	if arg, _ := def.Argument(0); arg.Kind != KindString {
		t.Errorf("definition changed through spec slice: got %s", arg.Kind)
	}

	// Mutating the returned copy must not leak either.
	args := def.Arguments()
	args[1] = Bool()
	if arg, _ := def.Argument(1); arg.Kind != KindString {
		t.Errorf("definition changed through Arguments() copy: got %s", arg.Kind)
	}
}

func TestNewConfigurationLine_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*LineSpec)
		fieldErrs  int
		wantSubErr error
	}{
		{"lower case name", func(s *LineSpec) { s.Name = "field" }, 1, ErrInvalidKeywordName},
		{"empty group", func(s *LineSpec) { s.Group = "" }, 1, ErrInvalidGroup},
		{"spaced link", func(s *LineSpec) { s.DocumentationLink = "a b" }, 1, ErrInvalidDocumentationLink},
		{
			"rest of line first",
			func(s *LineSpec) { s.Arguments = []Argument{String(RestOfLine()), String()} },
			1, ErrInvalidArgument,
		},
		{
			"everything wrong",
			func(s *LineSpec) {
				s.Name = ""
				s.Group = " "
				s.Arguments = []Argument{{Kind: "nope"}}
			},
			3, ErrInvalidKeywordName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := fieldSpec()
			tt.mutate(&spec)

			def, err := NewConfigurationLine(spec)
			if err == nil {
				t.Fatal("NewConfigurationLine() should fail")
			}
			if !def.IsZero() {
				t.Error("failed construction should return the zero definition")
			}
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("error should wrap ErrInvalidDefinition, got %v", err)
			}
			var defErr *InvalidDefinitionError
			if !errors.As(err, &defErr) {
				t.Fatalf("error should be *InvalidDefinitionError, got %T", err)
			}
			if len(defErr.FieldErrors) != tt.fieldErrs {
				t.Errorf("got %d field errors (%v), want %d", len(defErr.FieldErrors), defErr.FieldErrors, tt.fieldErrs)
			}
			if !errors.Is(defErr.FieldErrors[0], tt.wantSubErr) {
				t.Errorf("first field error = %v, want wrapping %v", defErr.FieldErrors[0], tt.wantSubErr)
			}
		})
	}
}

func TestUsage_Optional(t *testing.T) {
	t.Parallel()

	def, err := NewConfigurationLine(LineSpec{
		Name:      "ENKF_RERUN",
		Arguments: []Argument{Bool(), Integer(Optional())},
		Group:     GroupEnkfControl,
	})
	if err != nil {
		t.Fatalf("NewConfigurationLine() error = %v", err)
	}
	if got, want := def.Usage(), "ENKF_RERUN <bool> [integer]"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
	if def.RequiredArgumentCount() != 1 {
		t.Errorf("RequiredArgumentCount() = %d, want 1", def.RequiredArgumentCount())
	}
}
