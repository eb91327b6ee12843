// SPDX-License-Identifier: MIT

package lusbir

import (
	"fmt"

	"github.com/katalvlaran/lusbir/core"
	"github.com/katalvlaran/lusbir/internal/checked"
)

// Lusbir is an immutable integer sequence described by a core.LusbTuple.
//
// The tuple is kept exactly as given (Tuple round-trips field by field); the
// normalised form is computed once at construction and drives every query.
// Equal and Hash compare represented values, so Lusbirs built from different
// tuples may be equal.
//
// The zero Lusbir behaves as an empty sequence, but its Tuple has Step == 0
// and does not describe a valid lusbir; use the constructors.
type Lusbir struct {
	tuple core.LusbTuple
	form  form
}

// New builds a Lusbir from a Config.
//
// Errors:
//   - core.ErrInvalidStep, core.ErrBadBoundType from cfg.Tuple.
//   - ErrArithmeticOverflow when the length exceeds MaxInt.
func New(cfg core.Config) (Lusbir, error) {
	t, err := cfg.Tuple()
	if err != nil {
		return Lusbir{}, err
	}

	return FromTuple(t)
}

// MustNew is New that panics on error. Intended for literals in tests and
// package-level variables.
func MustNew(cfg core.Config) Lusbir {
	l, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("lusbir: MustNew(%+v): %v", cfg, err))
	}

	return l
}

// FromTuple builds a Lusbir whose Tuple() is exactly t.
func FromTuple(t core.LusbTuple) (Lusbir, error) {
	f, err := normalize(t)
	if err != nil {
		return Lusbir{}, err
	}

	return Lusbir{tuple: t, form: f}, nil
}

// fromForm wraps an already normalised form. The reported tuple is the
// inclusive pair around the first and last element with base = first, or
// [0, 0) when empty; normalising it yields f again.
func fromForm(f form) Lusbir {
	if f.count == 0 {
		f.first = 0

		return Lusbir{
			tuple: core.LusbTuple{Lower: core.Inclusive(0), Upper: core.Exclusive(0), Step: f.step},
			form:  f,
		}
	}

	lo, hi := f.first, f.last()
	if f.step < 0 {
		lo, hi = hi, lo
	}

	return Lusbir{
		tuple: core.LusbTuple{Lower: core.Inclusive(lo), Upper: core.Inclusive(hi), Step: f.step, Base: f.first},
		form:  f,
	}
}

// Tuple returns the four-part description this Lusbir was built from.
func (l Lusbir) Tuple() core.LusbTuple { return l.tuple }

// Lower returns the lower bound.
func (l Lusbir) Lower() core.Bound { return l.tuple.Lower }

// Upper returns the upper bound.
func (l Lusbir) Upper() core.Bound { return l.tuple.Upper }

// Step returns the (nonzero) step.
func (l Lusbir) Step() int { return l.tuple.Step }

// Base returns the base.
func (l Lusbir) Base() int { return l.tuple.Base }

// BoundType returns the inclusivity combination of the bounds.
func (l Lusbir) BoundType() core.BoundType { return l.tuple.BoundType() }

// Config returns the Config that rebuilds l's tuple.
func (l Lusbir) Config() core.Config { return core.ConfigOf(l.tuple) }

// Len returns the number of elements.
func (l Lusbir) Len() int { return l.form.count }

// IsEmpty reports whether l has no elements.
func (l Lusbir) IsEmpty() bool { return l.form.count == 0 }

// NonEmpty reports whether l has at least one element (truthiness).
func (l Lusbir) NonEmpty() bool { return l.form.count > 0 }

// At returns the element at index i. Negative indices count from the end:
// At(-1) is the last element.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func (l Lusbir) At(i int) (int, error) {
	j := i
	if j < 0 {
		j += l.form.count
	}
	if j < 0 || j >= l.form.count {
		return 0, fmt.Errorf("index %d, len %d: %w", i, l.form.count, ErrIndexOutOfRange)
	}

	return l.form.at(j), nil
}

// First returns the first element in iteration order.
func (l Lusbir) First() (int, error) { return l.At(0) }

// Last returns the last element in iteration order.
func (l Lusbir) Last() (int, error) { return l.At(-1) }

// Contains reports whether x is an element. It never iterates.
func (l Lusbir) Contains(x int) bool {
	_, ok := l.form.indexOf(x)

	return ok
}

// Count returns the number of occurrences of x: 1 for members, 0 otherwise.
func (l Lusbir) Count(x int) int {
	if l.Contains(x) {
		return 1
	}

	return 0
}

// Index returns the position of x.
//
// Errors: ErrValueNotFound when x is not an element.
// Complexity: O(1).
func (l Lusbir) Index(x int) (int, error) {
	i, ok := l.form.indexOf(x)
	if !ok {
		return 0, fmt.Errorf("%d: %w", x, ErrValueNotFound)
	}

	return i, nil
}

// Equal reports whether l and other represent the same sequence of values,
// regardless of the tuples they were built from.
func (l Lusbir) Equal(other Lusbir) bool {
	return l.form.equal(other.form)
}

// Reversed returns a Lusbir over the same bounds and base with the step
// negated, i.e. the same values in reverse order.
//
// Errors: ErrArithmeticOverflow when the step is MinInt.
func (l Lusbir) Reversed() (Lusbir, error) {
	step, ok := checked.Neg(l.tuple.Step)
	if !ok {
		return Lusbir{}, fmt.Errorf("negating step %d: %w", l.tuple.Step, ErrArithmeticOverflow)
	}
	t := l.tuple
	t.Step = step

	return FromTuple(t)
}
