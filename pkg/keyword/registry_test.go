// SPDX-License-Identifier: MPL-2.0

package keyword

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustLine(t *testing.T, spec LineSpec) ConfigurationLineDefinition {
	t.Helper()
	def, err := NewConfigurationLine(spec)
	if err != nil {
		t.Fatalf("NewConfigurationLine(%s) error = %v", spec.Name, err)
	}
	return def
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, spec := range []LineSpec{
		{Name: "NUM_REALIZATIONS", Arguments: []Argument{Integer(AtLeast(1))}, Required: true, Group: GroupEnsemble},
		{Name: "GEN_KW", Arguments: []Argument{String(), String(), String(BuiltIn(), AllowSpace())}, Group: GroupParametrization},
		{Name: "ENSPATH", Arguments: []Argument{Path()}, Group: GroupEnsemble},
		{Name: "GEN_DATA", Arguments: []Argument{String(), String(), String(RestOfLine(), AllowSpace())}, Group: GroupParametrization},
		{Name: "SETENV", Arguments: []Argument{String(), String(RestOfLine(), AllowSpace())}, Group: GroupUnixEnvironment},
	} {
		if err := r.Add(mustLine(t, spec)); err != nil {
			t.Fatalf("Add(%s) error = %v", spec.Name, err)
		}
	}
	return r
}

func TestRegistry_ContainsAndLookup(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	for _, name := range r.Names() {
		if !r.Contains(name) {
			t.Errorf("Contains(%s) = false, want true", name)
		}
		def, err := r.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%s) error = %v", name, err)
		}
		if def.Name() != name {
			t.Errorf("Lookup(%s).Name() = %s", name, def.Name())
		}
	}

	for _, name := range []KeywordName{"NONEXISTENT_KEYWORD", "", "gen_kw", "FIELD"} {
		if r.Contains(name) {
			t.Errorf("Contains(%q) = true, want false", name)
		}
	}
}

func TestRegistry_LookupNotFound(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	def, err := r.Lookup("NONEXISTENT_KEYWORD")
	if err == nil {
		t.Fatal("Lookup(NONEXISTENT_KEYWORD) should fail")
	}
	if !def.IsZero() {
		t.Error("failed lookup should return the zero definition")
	}
	if !errors.Is(err, ErrKeywordNotFound) {
		t.Errorf("error should wrap ErrKeywordNotFound, got %v", err)
	}
	var nfErr *KeywordNotFoundError
	if !errors.As(err, &nfErr) || nfErr.Name != "NONEXISTENT_KEYWORD" {
		t.Errorf("error should be *KeywordNotFoundError for NONEXISTENT_KEYWORD, got %#v", err)
	}
}

func TestRegistry_AddDuplicate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	dup := mustLine(t, LineSpec{Name: "GEN_KW", Arguments: []Argument{Integer()}, Required: true, Group: GroupAdvanced})
	err := r.Add(dup)
	if err == nil {
		t.Fatal("Add() of a duplicate name should fail")
	}
	if !errors.Is(err, ErrDuplicateKeyword) {
		t.Errorf("error should wrap ErrDuplicateKeyword, got %v", err)
	}
	var dupErr *DuplicateKeywordError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error should be *DuplicateKeywordError, got %T", err)
	}
	if dupErr.Name != "GEN_KW" || dupErr.Existing != GroupParametrization || dupErr.Rejected != GroupAdvanced {
		t.Errorf("unexpected error fields: %+v", dupErr)
	}

	// The original entry is left untouched.
	def, err := r.Lookup("GEN_KW")
	if err != nil {
		t.Fatalf("Lookup(GEN_KW) error = %v", err)
	}
	if def.Group() != GroupParametrization || def.ArgumentCount() != 3 || def.IsRequired() {
		t.Errorf("existing GEN_KW entry was modified: %+v", def)
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d after rejected duplicate, want 5", r.Len())
	}
}

func TestRegistry_AddZero(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	err := r.Add(ConfigurationLineDefinition{})
	if !errors.Is(err, ErrInvalidKeywordName) {
		t.Errorf("Add(zero) error = %v, want ErrInvalidKeywordName", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistry_ZeroValue(t *testing.T) {
	t.Parallel()

	var r Registry
	if r.Contains("FIELD") {
		t.Error("empty registry should not contain FIELD")
	}
	if _, err := r.Lookup("FIELD"); !errors.Is(err, ErrKeywordNotFound) {
		t.Errorf("Lookup() error = %v, want ErrKeywordNotFound", err)
	}

	field := mustLine(t, LineSpec{Name: "FIELD", Arguments: []Argument{String()}, Group: GroupParametrization})
	if err := r.Add(field); err != nil {
		t.Fatalf("Add() on zero-value Registry error = %v", err)
	}
	if !r.Contains("FIELD") || r.Len() != 1 {
		t.Errorf("after Add: Contains = %v, Len = %d", r.Contains("FIELD"), r.Len())
	}
	if err := r.Add(field); !errors.Is(err, ErrDuplicateKeyword) {
		t.Errorf("second Add() error = %v, want ErrDuplicateKeyword", err)
	}
}

func TestRegistry_Ordering(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	wantNames := []KeywordName{"NUM_REALIZATIONS", "GEN_KW", "ENSPATH", "GEN_DATA", "SETENV"}
	if diff := cmp.Diff(wantNames, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	var defNames []KeywordName
	for _, def := range r.Definitions() {
		defNames = append(defNames, def.Name())
	}
	if diff := cmp.Diff(wantNames, defNames); diff != "" {
		t.Errorf("Definitions() order mismatch (-want +got):\n%s", diff)
	}

	wantGroups := []Group{GroupEnsemble, GroupParametrization, GroupUnixEnvironment}
	if diff := cmp.Diff(wantGroups, r.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}

	var ensemble []KeywordName
	for _, def := range r.InGroup(GroupEnsemble) {
		ensemble = append(ensemble, def.Name())
	}
	if diff := cmp.Diff([]KeywordName{"NUM_REALIZATIONS", "ENSPATH"}, ensemble); diff != "" {
		t.Errorf("InGroup(Ensemble) mismatch (-want +got):\n%s", diff)
	}
	if got := r.InGroup(GroupPlot); len(got) != 0 {
		t.Errorf("InGroup(Plot) = %v, want empty", got)
	}

	// Names() hands out a copy.
	names := r.Names()
	names[0] = "CHANGED"
	if r.Names()[0] != "NUM_REALIZATIONS" {
		t.Error("Names() must return a copy")
	}
}

func TestRegistry_Required(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	req := r.Required()
	if len(req) != 1 || req[0].Name() != "NUM_REALIZATIONS" {
		t.Errorf("Required() = %v, want [NUM_REALIZATIONS]", req)
	}
}

func TestRegistry_Complete(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	tests := []struct {
		prefix string
		want   []KeywordName
	}{
		{"GEN_", []KeywordName{"GEN_DATA", "GEN_KW"}},
		{"gen", []KeywordName{"GEN_DATA", "GEN_KW"}},
		{"N", []KeywordName{"NUM_REALIZATIONS"}},
		{"ZZZ", nil},
		{"", []KeywordName{"ENSPATH", "GEN_DATA", "GEN_KW", "NUM_REALIZATIONS", "SETENV"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, r.Complete(tt.prefix)); diff != "" {
			t.Errorf("Complete(%q) mismatch (-want +got):\n%s", tt.prefix, diff)
		}
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range r.Names() {
				if _, err := r.Lookup(name); err != nil {
					t.Errorf("Lookup(%s) error = %v", name, err)
				}
			}
			_ = r.Complete("GEN")
			_ = r.Groups()
		}()
	}
	wg.Wait()
}
