// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strconv"
)

// Bound is one endpoint of a lusbir: an integer paired with an inclusivity.
// Two Bounds are equal iff both fields match.
type Bound struct {
	// Number is the numeric bound.
	Number int

	// Inclusive reports whether Number itself may belong to the lusbir.
	Inclusive bool
}

// Inclusive returns the inclusive Bound at n.
func Inclusive(n int) Bound { return Bound{Number: n, Inclusive: true} }

// Exclusive returns the exclusive Bound at n.
func Exclusive(n int) Bound { return Bound{Number: n} }

// LowerString renders b as a lower endpoint: "[n" or "(n".
func (b Bound) LowerString() string {
	if b.Inclusive {
		return "[" + strconv.Itoa(b.Number)
	}

	return "(" + strconv.Itoa(b.Number)
}

// UpperString renders b as an upper endpoint: "n]" or "n)".
func (b Bound) UpperString() string {
	if b.Inclusive {
		return strconv.Itoa(b.Number) + "]"
	}

	return strconv.Itoa(b.Number) + ")"
}

// BoundType names one of the four inclusivity combinations of a lower and an
// upper bound. The zero value is ClosedOpen.
type BoundType int

const (
	// ClosedOpen is "[)": inclusive lower bound, exclusive upper bound.
	ClosedOpen BoundType = iota

	// Open is "()": both bounds exclusive.
	Open

	// OpenClosed is "(]": exclusive lower bound, inclusive upper bound.
	OpenClosed

	// Closed is "[]": both bounds inclusive.
	Closed
)

// boundTypeTags maps each BoundType to its two-character tag.
var boundTypeTags = [...]string{
	ClosedOpen: "[)",
	Open:       "()",
	OpenClosed: "(]",
	Closed:     "[]",
}

// String returns the tag of t ("[)", "()", "(]" or "[]").
func (t BoundType) String() string {
	if t < ClosedOpen || t > Closed {
		return "BoundType(" + strconv.Itoa(int(t)) + ")"
	}

	return boundTypeTags[t]
}

// Valid reports whether t is one of the four declared bound types.
func (t BoundType) Valid() bool { return t >= ClosedOpen && t <= Closed }

// Inclusivities returns the lower and upper inclusivity flags of t.
func (t BoundType) Inclusivities() (lower, upper bool) {
	switch t {
	case Open:
		return false, false
	case OpenClosed:
		return false, true
	case Closed:
		return true, true
	default:
		return true, false
	}
}

// BoundTypeOf returns the BoundType with the given inclusivities.
func BoundTypeOf(lower, upper bool) BoundType {
	switch {
	case lower && upper:
		return Closed
	case lower:
		return ClosedOpen
	case upper:
		return OpenClosed
	default:
		return Open
	}
}

// ParseBoundType parses a two-character tag into a BoundType.
func ParseBoundType(s string) (BoundType, error) {
	for t, tag := range boundTypeTags {
		if tag == s {
			return BoundType(t), nil
		}
	}

	return ClosedOpen, fmt.Errorf("%q: %w", s, ErrBadBoundType)
}

// LusbTuple is the four-part description of a lusbir.
//
// Equality is field-wise (Go ==) and therefore stricter than sequence
// equality: two tuples may describe the same values without being equal.
// A tuple with Step == 0 can exist as a value but does not describe a lusbir;
// NewTuple and Validate reject it.
type LusbTuple struct {
	Lower Bound
	Upper Bound
	Step  int
	Base  int
}

// NewTuple returns a validated LusbTuple.
func NewTuple(lower, upper Bound, step, base int) (LusbTuple, error) {
	t := LusbTuple{Lower: lower, Upper: upper, Step: step, Base: base}
	if err := t.Validate(); err != nil {
		return LusbTuple{}, err
	}

	return t, nil
}

// Validate returns ErrInvalidStep when t.Step is zero.
func (t LusbTuple) Validate() error {
	if t.Step == 0 {
		return ErrInvalidStep
	}

	return nil
}

// BoundType returns the inclusivity combination of t's bounds.
func (t LusbTuple) BoundType() BoundType {
	return BoundTypeOf(t.Lower.Inclusive, t.Upper.Inclusive)
}

// String renders t as "{[lb, ub), step=s, base=b}".
func (t LusbTuple) String() string {
	return fmt.Sprintf("{%s, %s, step=%d, base=%d}",
		t.Lower.LowerString(), t.Upper.UpperString(), t.Step, t.Base)
}
