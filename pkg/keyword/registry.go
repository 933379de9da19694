// SPDX-License-Identifier: MPL-2.0

package keyword

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

var (
	// ErrDuplicateKeyword is the sentinel error wrapped by DuplicateKeywordError.
	ErrDuplicateKeyword = errors.New("duplicate keyword")
	// ErrKeywordNotFound is the sentinel error wrapped by KeywordNotFoundError.
	ErrKeywordNotFound = errors.New("keyword not found")
)

type (
	// DuplicateKeywordError is returned when a keyword name is added twice.
	// It always indicates a defect in the static catalog.
	DuplicateKeywordError struct {
		Name KeywordName
		// Existing is the group of the definition already registered under Name.
		Existing Group
		// Rejected is the group of the definition that was refused.
		Rejected Group
	}

	// KeywordNotFoundError is returned by Lookup for an unregistered name.
	KeywordNotFoundError struct {
		Name KeywordName
	}

	// Registry maps keyword names to their ConfigurationLineDefinition.
	// It is filled once during startup and only read afterwards; concurrent
	// reads are safe once filling is done. The zero value is an empty
	// registry ready to use.
	Registry struct {
		definitions map[KeywordName]ConfigurationLineDefinition
		order       []KeywordName
	}
)

// Error implements the error interface for DuplicateKeywordError.
func (e *DuplicateKeywordError) Error() string {
	return fmt.Sprintf("keyword %s already registered (group %q), refused redefinition from group %q", e.Name, e.Existing, e.Rejected)
}

// Unwrap returns ErrDuplicateKeyword for errors.Is() compatibility.
func (e *DuplicateKeywordError) Unwrap() error { return ErrDuplicateKeyword }

// Error implements the error interface for KeywordNotFoundError.
func (e *KeywordNotFoundError) Error() string {
	return fmt.Sprintf("keyword %q is not registered", e.Name)
}

// Unwrap returns ErrKeywordNotFound for errors.Is() compatibility.
func (e *KeywordNotFoundError) Unwrap() error { return ErrKeywordNotFound }

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[KeywordName]ConfigurationLineDefinition),
	}
}

// Add inserts def. It fails with a *DuplicateKeywordError, leaving the
// existing entry untouched, when the name is already registered.
func (r *Registry) Add(def ConfigurationLineDefinition) error {
	if def.IsZero() {
		return &InvalidKeywordNameError{Value: def.name}
	}
	if r.definitions == nil {
		r.definitions = make(map[KeywordName]ConfigurationLineDefinition)
	}
	if existing, ok := r.definitions[def.name]; ok {
		return &DuplicateKeywordError{Name: def.name, Existing: existing.group, Rejected: def.group}
	}
	slog.Debug("Registering keyword.", "name", def.name, "group", def.group, "arguments", len(def.arguments))
	r.definitions[def.name] = def
	r.order = append(r.order, def.name)
	return nil
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name KeywordName) bool {
	_, ok := r.definitions[name]
	return ok
}

// Lookup returns the definition registered under name, or a *KeywordNotFoundError.
func (r *Registry) Lookup(name KeywordName) (ConfigurationLineDefinition, error) {
	def, ok := r.definitions[name]
	if !ok {
		return ConfigurationLineDefinition{}, &KeywordNotFoundError{Name: name}
	}
	return def, nil
}

// Len returns the number of registered keywords.
func (r *Registry) Len() int { return len(r.order) }

// Names returns the registered names in declaration order.
func (r *Registry) Names() []KeywordName {
	out := make([]KeywordName, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns every definition in declaration order.
func (r *Registry) Definitions() []ConfigurationLineDefinition {
	out := make([]ConfigurationLineDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.definitions[name])
	}
	return out
}

// Groups returns the distinct groups in the order they were first registered.
func (r *Registry) Groups() []Group {
	seen := make(map[Group]bool)
	var groups []Group
	for _, name := range r.order {
		g := r.definitions[name].group
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	return groups
}

// InGroup returns the definitions of group g in declaration order.
func (r *Registry) InGroup(g Group) []ConfigurationLineDefinition {
	var out []ConfigurationLineDefinition
	for _, name := range r.order {
		if def := r.definitions[name]; def.group == g {
			out = append(out, def)
		}
	}
	return out
}

// Required returns the definitions flagged as required, in declaration order.
func (r *Registry) Required() []ConfigurationLineDefinition {
	var out []ConfigurationLineDefinition
	for _, name := range r.order {
		if def := r.definitions[name]; def.required {
			out = append(out, def)
		}
	}
	return out
}

// Complete returns the registered names starting with prefix, compared
// case-insensitively, sorted alphabetically. An empty prefix matches everything.
func (r *Registry) Complete(prefix string) []KeywordName {
	prefix = strings.ToUpper(prefix)
	var out []KeywordName
	for _, name := range r.order {
		if strings.HasPrefix(string(name), prefix) {
			out = append(out, name)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
