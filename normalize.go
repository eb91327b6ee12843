// SPDX-License-Identifier: MIT

package lusbir

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lusbir/core"
	"github.com/katalvlaran/lusbir/internal/checked"
)

// form is the normalised representation of a lusbir: count elements starting
// at first and spaced by step. first is meaningful only when count > 0 and is
// kept at 0 otherwise so that forms compare canonically.
type form struct {
	count int
	first int
	step  int
}

// normalize maps a tuple to its form.
//
// Algorithm:
//  1. Turn both bounds into an inclusive interval [lo, hi]. An exclusive bound
//     at the edge of int ("(MaxInt" or "MinInt)") leaves no integer inside.
//  2. With s = |step|, x0 = lo + ((base - lo) mod s) is the smallest member.
//  3. count = (hi - x0) / s + 1.
//  4. first = x0 for step > 0, the largest member x0 + (count-1)·s otherwise.
//
// Spans and residues are unsigned, so no step of the computation can wrap.
// Only a count above MaxInt is reported, as ErrArithmeticOverflow.
//
// Complexity: O(1).
func normalize(t core.LusbTuple) (form, error) {
	if err := t.Validate(); err != nil {
		return form{}, err
	}
	empty := form{step: t.Step}

	lo, ok := lowerInclusive(t.Lower)
	if !ok {
		return empty, nil
	}
	hi, ok := upperInclusive(t.Upper)
	if !ok || lo > hi {
		return empty, nil
	}

	s := checked.Abs(t.Step)
	span := checked.Span(lo, hi)
	residue := checked.Residue(t.Base, lo, s)
	if residue > span {
		return empty, nil
	}

	q := (span - residue) / s
	lastIndex, ok := checked.ToInt(q)
	if !ok || lastIndex == math.MaxInt {
		return form{}, fmt.Errorf("%v: more than %d elements: %w", t, math.MaxInt, ErrArithmeticOverflow)
	}
	x0 := checked.Offset(lo, residue)

	f := form{count: lastIndex + 1, first: x0, step: t.Step}
	if t.Step < 0 {
		f.first = checked.Offset(x0, q*s)
	}

	return f, nil
}

// lowerInclusive returns the smallest integer admitted by b as a lower bound.
func lowerInclusive(b core.Bound) (int, bool) {
	if b.Inclusive {
		return b.Number, true
	}

	return checked.Add(b.Number, 1)
}

// upperInclusive returns the largest integer admitted by b as an upper bound.
func upperInclusive(b core.Bound) (int, bool) {
	if b.Inclusive {
		return b.Number, true
	}

	return checked.Sub(b.Number, 1)
}

// at returns the i-th element, 0 <= i < count. The true value lies between
// the bounds, so two's-complement evaluation is exact even when i·step alone
// would not fit.
func (f form) at(i int) int {
	return f.first + i*f.step
}

// last returns the final element; count must be positive.
func (f form) last() int {
	return f.at(f.count - 1)
}

// indexOf returns the position of x, or ok=false if x is not a member.
func (f form) indexOf(x int) (int, bool) {
	if f.count == 0 {
		return 0, false
	}

	var d uint64
	if f.step > 0 {
		if x < f.first {
			return 0, false
		}
		d = checked.Span(f.first, x)
	} else {
		if x > f.first {
			return 0, false
		}
		d = checked.Span(x, f.first)
	}

	s := checked.Abs(f.step)
	if d%s != 0 {
		return 0, false
	}
	q := d / s
	if q >= uint64(f.count) {
		return 0, false
	}

	return int(q), true
}

// equal reports whether f and g represent the same sequence: same length,
// same first element when non-empty, same step when longer than one.
func (f form) equal(g form) bool {
	if f.count != g.count {
		return false
	}
	if f.count == 0 {
		return true
	}
	if f.first != g.first {
		return false
	}

	return f.count == 1 || f.step == g.step
}
