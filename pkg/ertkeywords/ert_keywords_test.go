// SPDX-License-Identifier: MPL-2.0

package ertkeywords

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kgreg1/ert/pkg/keyword"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if r.Len() == 0 {
		t.Fatal("New() returned an empty registry")
	}

	for _, name := range r.Names() {
		if !r.Contains(name) {
			t.Errorf("Contains(%s) = false for a registered name", name)
		}
	}
	for _, name := range []keyword.KeywordName{"NONEXISTENT_KEYWORD", "FIELDS", "GEN"} {
		if r.Contains(name) {
			t.Errorf("Contains(%s) = true, want false", name)
		}
	}
}

func TestNew_UniqueNames(t *testing.T) {
	t.Parallel()

	// Build the catalog group by group into a plain map so duplicates across
	// groups are reported with both owners.
	owners := make(map[keyword.KeywordName]keyword.Group)
	for _, reg := range registrars {
		scratch := keyword.NewRegistry()
		if err := reg.populate(scratch); err != nil {
			t.Fatalf("%s registrar error = %v", reg.group, err)
		}
		for _, def := range scratch.Definitions() {
			if prev, ok := owners[def.Name()]; ok {
				t.Errorf("keyword %s defined by both %q and %q", def.Name(), prev, reg.group)
			}
			owners[def.Name()] = reg.group
		}
	}

	r := MustNew()
	if r.Len() != len(owners) {
		t.Errorf("registry holds %d keywords, groups declare %d", r.Len(), len(owners))
	}
}

func TestNew_GroupOrder(t *testing.T) {
	t.Parallel()

	want := []keyword.Group{
		keyword.GroupEnsemble,
		keyword.GroupRun,
		keyword.GroupEclipse,
		keyword.GroupQueueSystem,
		keyword.GroupSimulationControl,
		keyword.GroupParametrization,
		keyword.GroupEnkfControl,
		keyword.GroupAnalysisModule,
		keyword.GroupPlot,
		keyword.GroupWorkflow,
		keyword.GroupReport,
		keyword.GroupAdvanced,
		keyword.GroupQC,
		keyword.GroupUnixEnvironment,
	}
	if diff := cmp.Diff(want, Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, MustNew().Groups()); diff != "" {
		t.Errorf("registry Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_DefinitionsWellFormed(t *testing.T) {
	t.Parallel()

	for _, def := range MustNew().Definitions() {
		spec := keyword.LineSpec{
			Name:              def.Name(),
			Arguments:         def.Arguments(),
			DocumentationLink: def.DocumentationLink(),
			Required:          def.IsRequired(),
			Group:             def.Group(),
		}
		if valid, errs := spec.IsValid(); !valid {
			t.Errorf("%s: %v", def.Name(), errs)
		}
		if def.DocumentationLink() == "" {
			t.Errorf("%s has no documentation link", def.Name())
		}
		if !strings.HasSuffix(def.DocumentationLink().String(), strings.ToLower(def.Name().String())) {
			t.Errorf("%s documentation link %q does not name the keyword", def.Name(), def.DocumentationLink())
		}
	}
}

func TestRequiredKeywords(t *testing.T) {
	t.Parallel()

	var names []keyword.KeywordName
	for _, def := range MustNew().Required() {
		names = append(names, def.Name())
	}
	if diff := cmp.Diff([]keyword.KeywordName{"NUM_REALIZATIONS"}, names); diff != "" {
		t.Errorf("Required() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupNotFound(t *testing.T) {
	t.Parallel()

	_, err := MustNew().Lookup("NONEXISTENT_KEYWORD")
	if !errors.Is(err, keyword.ErrKeywordNotFound) {
		t.Errorf("Lookup(NONEXISTENT_KEYWORD) error = %v, want ErrKeywordNotFound", err)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	got := MustNew().Complete("GEN_")
	want := []keyword.KeywordName{"GEN_DATA", "GEN_KW", "GEN_KW_EXPORT_FILE", "GEN_KW_TAG_FORMAT", "GEN_PARAM"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Complete(GEN_) mismatch (-want +got):\n%s", diff)
	}
}

func TestParametrizationKeywords(t *testing.T) {
	t.Parallel()

	r := MustNew()

	params := r.InGroup(keyword.GroupParametrization)
	var names []keyword.KeywordName
	for _, def := range params {
		names = append(names, def.Name())
	}
	want := []keyword.KeywordName{"FIELD", "GEN_DATA", "GEN_KW", "SUMMARY", "GEN_PARAM"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Parametrization keywords mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name     keyword.KeywordName
		argCount int
		last     keyword.Argument
		link     keyword.DocumentationLink
	}{
		{"FIELD", 3, keyword.String(keyword.RestOfLine(), keyword.AllowSpace()), "parametrization/field"},
		{"GEN_DATA", 3, keyword.String(keyword.RestOfLine(), keyword.AllowSpace()), "parametrization/gen_data"},
		{"GEN_KW", 3, keyword.String(keyword.BuiltIn(), keyword.AllowSpace()), "parametrization/gen_kw"},
		{"GEN_PARAM", 3, keyword.String(keyword.BuiltIn(), keyword.AllowSpace()), "parametrization/gen_param"},
		{"SUMMARY", 1, keyword.String(), "parametrization/summary"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()

			def, err := r.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%s) error = %v", tt.name, err)
			}
			if def.ArgumentCount() != tt.argCount {
				t.Fatalf("ArgumentCount() = %d, want %d", def.ArgumentCount(), tt.argCount)
			}
			last, ok := def.Argument(tt.argCount - 1)
			if !ok {
				t.Fatalf("Argument(%d) missing", tt.argCount-1)
			}
			if diff := cmp.Diff(tt.last, last); diff != "" {
				t.Errorf("last argument mismatch (-want +got):\n%s", diff)
			}
			if def.DocumentationLink() != tt.link {
				t.Errorf("DocumentationLink() = %q, want %q", def.DocumentationLink(), tt.link)
			}
			if def.Group() != keyword.GroupParametrization {
				t.Errorf("Group() = %q, want %q", def.Group(), keyword.GroupParametrization)
			}
			if def.IsRequired() {
				t.Error("IsRequired() = true, want false")
			}
		})
	}
}

func TestBuild_DuplicateAcrossGroups(t *testing.T) {
	t.Parallel()

	regs := []groupRegistrar{
		{keyword.GroupParametrization, "parametrization", parametrizationKeywords},
		{keyword.GroupAdvanced, "advanced", func(w *groupWriter) {
			w.add(line("DEFINE", text()))
			w.add(line("FIELD", keyword.String()))
			w.add(line("NEVER_REACHED", keyword.String()))
		}},
	}

	r, err := build(regs)
	if err == nil {
		t.Fatal("build() should fail on a duplicate keyword")
	}
	if r != nil {
		t.Error("build() must not return a partial registry")
	}
	var dupErr *keyword.DuplicateKeywordError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error should be *keyword.DuplicateKeywordError, got %T: %v", err, err)
	}
	if dupErr.Name != "FIELD" || dupErr.Existing != keyword.GroupParametrization || dupErr.Rejected != keyword.GroupAdvanced {
		t.Errorf("unexpected duplicate error: %+v", dupErr)
	}
	if !strings.Contains(err.Error(), "register Advanced keywords") {
		t.Errorf("error should name the failing group, got %q", err.Error())
	}
}

func TestBuild_InvalidDefinition(t *testing.T) {
	t.Parallel()

	regs := []groupRegistrar{
		{keyword.GroupAdvanced, "advanced", func(w *groupWriter) {
			w.add(line("BAD", text(), keyword.String()))
		}},
	}

	_, err := build(regs)
	if !errors.Is(err, keyword.ErrInvalidDefinition) {
		t.Errorf("build() error = %v, want ErrInvalidDefinition", err)
	}
}
