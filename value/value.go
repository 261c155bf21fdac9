/*
File    : tlox/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime Value union the evaluator produces and
// consumes: Nil, Boolean, String, Number, and Function. It plays the role
// the teacher's objects package plays for GoMix, scoped down to spec.md's
// closed runtime-value set and its Callable capability.
package value

import (
	"fmt"
	"math"
)

// Kind identifies which Value variant a value holds.
type Kind string

const (
	NilKind      Kind = "nil"
	BooleanKind  Kind = "boolean"
	StringKind   Kind = "string"
	NumberKind   Kind = "number"
	FunctionKind Kind = "function"
)

// Value is the runtime-only union every expression evaluates to. Numbers
// and booleans are value-copied by Go's assignment semantics already;
// strings and functions are reference types in Go (string headers and
// pointers/interfaces respectively), so sharing a closure or a string
// across bindings never copies the underlying bytes or function body.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
	// DisplayString renders the value the way `print` and the CLI's
	// evaluate command show it (see Number.DisplayString/FormatForEvaluate
	// for the one place the two diverge: Number).
	DisplayString() string
}

// Nil is the language's singleton null value.
type Nil struct{}

func (Nil) Kind() Kind             { return NilKind }
func (Nil) DisplayString() string  { return "nil" }

// NilValue is the single shared Nil instance; use it instead of
// constructing new Nil{} values.
var NilValue Value = Nil{}

// Boolean is a true/false runtime value.
type Boolean bool

func (b Boolean) Kind() Kind { return BooleanKind }
func (b Boolean) DisplayString() string {
	if b {
		return "true"
	}
	return "false"
}

// String is a runtime string value. Go's string type is already an
// immutable, cheaply-shared reference to its backing bytes, so binding the
// same String to multiple names never copies the contents.
type String string

func (s String) Kind() Kind            { return StringKind }
func (s String) DisplayString() string { return string(s) }

// Number is a double-precision runtime number.
type Number float64

func (n Number) Kind() Kind { return NumberKind }

// DisplayString implements the runtime `print` formatting rule: minimal
// precision, no forced trailing ".0". FormatForEvaluate implements the
// distinct parse/evaluate-CLI rule that does force ".0" on integral
// values; see that function's doc comment for why the two differ.
func (n Number) DisplayString() string {
	return formatMinimal(float64(n))
}

func formatMinimal(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%g", f)
}

// FormatForEvaluate renders v the way the `evaluate` CLI subcommand (and
// parse-time literal display) renders a Number: integral values show a
// forced trailing ".0". Every other Value kind renders identically to
// DisplayString. This mirrors a real structural split in the original
// Lox-family implementation this language is drawn from, where literal
// display and runtime Print use two distinct Display implementations.
func FormatForEvaluate(v Value) string {
	if n, ok := v.(Number); ok {
		f := float64(n)
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return fmt.Sprintf("%.1f", f)
		}
		return formatMinimal(f)
	}
	return v.DisplayString()
}

// IsTruthy implements the language's truthiness rule: only false and nil
// are falsy; everything else, including 0 and "", is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements the language's equality rule: numbers compare by IEEE
// value (so NaN != NaN), strings by content, functions by reference
// identity, nil equals only nil, and values of different kinds are always
// unequal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Boolean:
		return av == b.(Boolean)
	case String:
		return av == b.(String)
	case Number:
		return float64(av) == float64(b.(Number))
	case Callable:
		bc, ok := b.(Callable)
		return ok && sameCallable(av, bc)
	default:
		return false
	}
}
