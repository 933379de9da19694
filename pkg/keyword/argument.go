// SPDX-License-Identifier: MPL-2.0

package keyword

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// KindString is a free-form token.
	KindString ArgumentKind = "string"
	// KindInteger is a whole number, optionally bounded.
	KindInteger ArgumentKind = "integer"
	// KindFloat is a floating-point number, optionally bounded.
	KindFloat ArgumentKind = "float"
	// KindBool is a TRUE/FALSE (or 0/1) flag.
	KindBool ArgumentKind = "bool"
	// KindPath is a filesystem path.
	KindPath ArgumentKind = "path"
	// KindProperName is an identifier without special characters.
	KindProperName ArgumentKind = "proper_name"
	// KindProperNameFormat is an identifier template containing a %d placeholder.
	KindProperNameFormat ArgumentKind = "proper_name_format"
	// KindRangeString is a realization range such as "0-4,7,9-11".
	KindRangeString ArgumentKind = "range_string"
	// KindPercent is a percentage, bounded to 0-100.
	KindPercent ArgumentKind = "percent"
)

var (
	// ErrInvalidArgumentKind is returned when an ArgumentKind value is not one of the defined kinds.
	ErrInvalidArgumentKind = errors.New("invalid argument kind")
	// ErrInvalidArgument is the sentinel error wrapped by InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	allKinds = []ArgumentKind{
		KindString, KindInteger, KindFloat, KindBool, KindPath,
		KindProperName, KindProperNameFormat, KindRangeString, KindPercent,
	}
)

type (
	// ArgumentKind is the closed set of positional argument types a keyword can declare.
	ArgumentKind string

	// InvalidArgumentKindError is returned when an ArgumentKind value is not recognized.
	// It wraps ErrInvalidArgumentKind for errors.Is() compatibility.
	InvalidArgumentKindError struct {
		Value ArgumentKind
	}

	// InvalidArgumentError is returned when an Argument carries contradictory modifiers.
	InvalidArgumentError struct {
		Position int
		Reason   string
	}

	// Bounds limits the accepted range of a numeric argument.
	// A bound only applies when its Has flag is set.
	Bounds struct {
		Min    float64
		Max    float64
		HasMin bool
		HasMax bool
	}

	// Argument describes one positional, typed token expected after a keyword.
	Argument struct {
		// Kind is the argument type.
		Kind ArgumentKind
		// RestOfLine makes the argument consume every remaining token on the line.
		// Only the last argument of a definition may set it.
		RestOfLine bool
		// AllowSpace accepts embedded whitespace in the value.
		AllowSpace bool
		// BuiltIn marks a value that refers to a built-in template or function.
		BuiltIn bool
		// Optional means the argument may be omitted.
		Optional bool
		// Bounds restricts numeric kinds (integer, float, percent).
		Bounds Bounds
	}

	// ArgumentOption configures an Argument built by one of the kind constructors.
	ArgumentOption func(*Argument)
)

// Kinds returns every defined argument kind.
func Kinds() []ArgumentKind {
	out := make([]ArgumentKind, len(allKinds))
	copy(out, allKinds)
	return out
}

// String returns the string representation of the ArgumentKind.
func (k ArgumentKind) String() string { return string(k) }

// IsValid returns whether the ArgumentKind is one of the defined kinds,
// and a list of validation errors if it is not.
func (k ArgumentKind) IsValid() (bool, []error) {
	for _, known := range allKinds {
		if k == known {
			return true, nil
		}
	}
	return false, []error{&InvalidArgumentKindError{Value: k}}
}

// IsNumeric reports whether the kind accepts Bounds.
func (k ArgumentKind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat || k == KindPercent
}

// Error implements the error interface for InvalidArgumentKindError.
func (e *InvalidArgumentKindError) Error() string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = string(k)
	}
	return fmt.Sprintf("invalid argument kind %q (valid: %s)", e.Value, strings.Join(names, ", "))
}

// Unwrap returns ErrInvalidArgumentKind for errors.Is() compatibility.
func (e *InvalidArgumentKindError) Unwrap() error { return ErrInvalidArgumentKind }

// Error implements the error interface for InvalidArgumentError.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument #%d: %s", e.Position+1, e.Reason)
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// --- Constructors ---

// String returns a string argument.
func String(opts ...ArgumentOption) Argument { return newArgument(KindString, opts) }

// Integer returns an integer argument.
func Integer(opts ...ArgumentOption) Argument { return newArgument(KindInteger, opts) }

// Float returns a floating-point argument.
func Float(opts ...ArgumentOption) Argument { return newArgument(KindFloat, opts) }

// Bool returns a boolean argument.
func Bool(opts ...ArgumentOption) Argument { return newArgument(KindBool, opts) }

// Path returns a filesystem path argument.
func Path(opts ...ArgumentOption) Argument { return newArgument(KindPath, opts) }

// ProperName returns a proper-name argument.
func ProperName(opts ...ArgumentOption) Argument { return newArgument(KindProperName, opts) }

// ProperNameFormat returns a proper-name-format argument.
func ProperNameFormat(opts ...ArgumentOption) Argument {
	return newArgument(KindProperNameFormat, opts)
}

// RangeString returns a realization range argument.
func RangeString(opts ...ArgumentOption) Argument { return newArgument(KindRangeString, opts) }

// Percent returns a percentage argument bounded to 0-100.
func Percent(opts ...ArgumentOption) Argument {
	return newArgument(KindPercent, append([]ArgumentOption{Between(0, 100)}, opts...))
}

func newArgument(kind ArgumentKind, opts []ArgumentOption) Argument {
	a := Argument{Kind: kind}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// --- Options ---

// RestOfLine makes the argument consume the rest of the line.
func RestOfLine() ArgumentOption { return func(a *Argument) { a.RestOfLine = true } }

// AllowSpace lets the argument value contain spaces.
func AllowSpace() ArgumentOption { return func(a *Argument) { a.AllowSpace = true } }

// BuiltIn marks the argument as a built-in reference.
func BuiltIn() ArgumentOption { return func(a *Argument) { a.BuiltIn = true } }

// Optional marks the argument as omittable.
func Optional() ArgumentOption { return func(a *Argument) { a.Optional = true } }

// AtLeast sets an inclusive lower bound.
func AtLeast(v float64) ArgumentOption {
	return func(a *Argument) { a.Bounds.Min, a.Bounds.HasMin = v, true }
}

// AtMost sets an inclusive upper bound.
func AtMost(v float64) ArgumentOption {
	return func(a *Argument) { a.Bounds.Max, a.Bounds.HasMax = v, true }
}

// Between sets both bounds.
func Between(lo, hi float64) ArgumentOption {
	return func(a *Argument) {
		AtLeast(lo)(a)
		AtMost(hi)(a)
	}
}

// --- Argument methods ---

// IsZero reports whether no bound is set.
func (b Bounds) IsZero() bool { return !b.HasMin && !b.HasMax }

// String renders the bounds as an interval, e.g. "[1, ∞)".
func (b Bounds) String() string {
	if b.IsZero() {
		return ""
	}
	lo, hi := "(-∞", "∞)"
	if b.HasMin {
		lo = "[" + strconv.FormatFloat(b.Min, 'g', -1, 64)
	}
	if b.HasMax {
		hi = strconv.FormatFloat(b.Max, 'g', -1, 64) + "]"
	}
	return lo + ", " + hi
}

// Modifiers returns the names of the modifiers set on the argument, in a fixed order.
func (a Argument) Modifiers() []string {
	var mods []string
	if a.RestOfLine {
		mods = append(mods, "rest_of_line")
	}
	if a.AllowSpace {
		mods = append(mods, "allow_space")
	}
	if a.BuiltIn {
		mods = append(mods, "built_in")
	}
	if a.Optional {
		mods = append(mods, "optional")
	}
	return mods
}

// String renders the argument as kind(modifiers) with bounds, e.g. "integer[1, ∞)".
func (a Argument) String() string {
	var sb strings.Builder
	sb.WriteString(string(a.Kind))
	if mods := a.Modifiers(); len(mods) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(mods, ", "))
		sb.WriteString(")")
	}
	sb.WriteString(a.Bounds.String())
	return sb.String()
}

// validate checks the argument at the given position in a list of total arguments.
func (a Argument) validate(position, total int) []error {
	var errs []error
	if valid, kindErrs := a.Kind.IsValid(); !valid {
		errs = append(errs, kindErrs...)
	}
	if a.RestOfLine && position != total-1 {
		errs = append(errs, &InvalidArgumentError{Position: position, Reason: "rest_of_line is only allowed on the last argument"})
	}
	if !a.Bounds.IsZero() && !a.Kind.IsNumeric() {
		errs = append(errs, &InvalidArgumentError{Position: position, Reason: fmt.Sprintf("bounds are not allowed on %s arguments", a.Kind)})
	}
	if a.Bounds.HasMin && a.Bounds.HasMax && a.Bounds.Min > a.Bounds.Max {
		errs = append(errs, &InvalidArgumentError{Position: position, Reason: fmt.Sprintf("lower bound %g exceeds upper bound %g", a.Bounds.Min, a.Bounds.Max)})
	}
	return errs
}
