// SPDX-License-Identifier: MIT

package lusbir

import (
	"fmt"

	"github.com/katalvlaran/lusbir/core"
	"github.com/katalvlaran/lusbir/internal/checked"
)

// SteppedRange is a conventional half-open range: Start, Start+Step, ... up
// to but excluding Stop. It is the interchange format of FromSteppedRange and
// ToSteppedRange.
type SteppedRange struct {
	Start int
	Stop  int
	Step  int
}

// IsEmpty reports whether r yields no values.
func (r SteppedRange) IsEmpty() bool {
	switch {
	case r.Step > 0:
		return r.Start >= r.Stop
	case r.Step < 0:
		return r.Start <= r.Stop
	default:
		return true
	}
}

// String renders r as "range(start, stop, step)".
func (r SteppedRange) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", r.Start, r.Stop, r.Step)
}

// FromSteppedRange returns the Lusbir with the same values as the stepped
// range (start, stop, step).
//
// A positive step becomes [start, stop) and a negative step becomes
// (stop, start]; the base is start in both cases. This direction is exact.
//
// Errors: core.ErrInvalidStep when step is 0.
func FromSteppedRange(start, stop, step int) (Lusbir, error) {
	var t core.LusbTuple
	switch {
	case step > 0:
		t = core.LusbTuple{Lower: core.Inclusive(start), Upper: core.Exclusive(stop), Step: step, Base: start}
	case step < 0:
		t = core.LusbTuple{Lower: core.Exclusive(stop), Upper: core.Inclusive(start), Step: step, Base: start}
	default:
		return Lusbir{}, fmt.Errorf("range(%d, %d, 0): %w", start, stop, core.ErrInvalidStep)
	}

	return FromTuple(t)
}

// FromRange is FromSteppedRange for a SteppedRange value.
func FromRange(r SteppedRange) (Lusbir, error) {
	return FromSteppedRange(r.Start, r.Stop, r.Step)
}

// ToSteppedRange returns a stepped range with the same values. The
// bounds, bound type and base are not recoverable from the result.
//
// An empty Lusbir yields range(0, 0, step). Otherwise the result is
// range(first, last+step, step).
//
// Errors: ErrArithmeticOverflow when last+step does not fit in an int.
func (l Lusbir) ToSteppedRange() (SteppedRange, error) {
	f := l.form
	if f.count == 0 {
		return SteppedRange{Step: f.step}, nil
	}

	stop, ok := checked.Add(f.last(), f.step)
	if !ok {
		return SteppedRange{}, fmt.Errorf("stop after %d by %d: %w", f.last(), f.step, ErrArithmeticOverflow)
	}

	return SteppedRange{Start: f.first, Stop: stop, Step: f.step}, nil
}
