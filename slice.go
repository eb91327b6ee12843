// SPDX-License-Identifier: MIT

package lusbir

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lusbir/internal/checked"
)

// Index is an optional slice argument: either omitted (None) or an explicit
// integer (Idx). Omitted values take the usual defaults: the start or end of
// the sequence, and a slice step of 1.
type Index struct {
	n   int
	set bool
}

// None is the omitted slice argument.
var None = Index{}

// Idx returns an explicit slice argument.
func Idx(n int) Index { return Index{n: n, set: true} }

// Value returns the explicit value and whether it was set.
func (x Index) Value() (int, bool) { return x.n, x.set }

// String returns the explicit value, or "None" when omitted.
func (x Index) String() string {
	if !x.set {
		return "None"
	}

	return strconv.Itoa(x.n)
}

// Slice returns l[start:stop:step] with Python slice semantics: half-open,
// negative indices count from the end, out-of-range endpoints are clamped,
// and a negative step walks backwards.
//
// The result is built directly from the normalised form (new length, new
// first element, step·sliceStep); its Tuple is the inclusive pair around its
// first and last element, with base equal to its first element.
//
// Errors:
//   - ErrZeroSliceStep for an explicit step of 0.
//   - ErrArithmeticOverflow when step·sliceStep does not fit in an int.
//
// Complexity: O(1).
func (l Lusbir) Slice(start, stop, step Index) (Lusbir, error) {
	k := 1
	if step.set {
		if step.n == 0 {
			return Lusbir{}, ErrZeroSliceStep
		}
		k = step.n
	}

	n := l.form.count
	lower, upper := 0, n
	if k < 0 {
		lower, upper = -1, n-1
	}

	var b, e int
	if k < 0 {
		b = clampIndex(start, n, lower, upper, upper)
		e = clampIndex(stop, n, lower, upper, lower)
	} else {
		b = clampIndex(start, n, lower, upper, lower)
		e = clampIndex(stop, n, lower, upper, upper)
	}

	newStep, ok := checked.Mul(l.form.step, k)
	if !ok {
		return Lusbir{}, fmt.Errorf("slice step %d of step %d: %w", k, l.form.step, ErrArithmeticOverflow)
	}

	f := form{count: sliceLen(b, e, k), step: newStep}
	if f.count > 0 {
		f.first = l.form.at(b)
	}

	return fromForm(f), nil
}

// clampIndex resolves one slice endpoint against a sequence of length n.
func clampIndex(x Index, n, lower, upper, def int) int {
	if !x.set {
		return def
	}
	i := x.n
	if i < 0 {
		i += n
		if i < lower {
			i = lower
		}
	} else if i > upper {
		i = upper
	}

	return i
}

// sliceLen returns the number of indices visited from b towards e by k.
func sliceLen(b, e, k int) int {
	s := checked.Abs(k)
	if k > 0 {
		if b >= e {
			return 0
		}

		return int((uint64(e-b)-1)/s + 1)
	}
	if e >= b {
		return 0
	}

	return int((uint64(b-e)-1)/s + 1)
}
