// SPDX-License-Identifier: MIT
// Package lusbir_test contains fixtures and brute-force references shared by
// the lusbir tests.

package lusbir_test

import (
	"testing"

	"github.com/katalvlaran/lusbir"
	"github.com/katalvlaran/lusbir/core"
	"github.com/stretchr/testify/require"
)

// tuple is shorthand for a literal LusbTuple.
func tuple(lower, upper core.Bound, step, base int) core.LusbTuple {
	return core.LusbTuple{Lower: lower, Upper: upper, Step: step, Base: base}
}

// mustTuple builds a Lusbir from t and fails the test on error.
func mustTuple(tb testing.TB, t core.LusbTuple) lusbir.Lusbir {
	tb.Helper()
	l, err := lusbir.FromTuple(t)
	require.NoError(tb, err, "FromTuple(%v)", t)

	return l
}

// mustConfig builds a Lusbir from positional-style values.
func mustConfig(tb testing.TB, bt core.BoundType, lower, upper, step, base int) lusbir.Lusbir {
	tb.Helper()
	l, err := lusbir.New(core.Config{BoundType: bt, Lower: lower, Upper: upper, Step: step, Base: base})
	require.NoError(tb, err)

	return l
}

// bruteForce enumerates the members of t by scanning every integer between
// the numeric bounds. Only usable for small bounds.
func bruteForce(t core.LusbTuple) []int {
	s := t.Step
	if s < 0 {
		s = -s
	}
	var asc []int
	for x := t.Lower.Number; x <= t.Upper.Number; x++ {
		if x == t.Lower.Number && !t.Lower.Inclusive {
			continue
		}
		if x == t.Upper.Number && !t.Upper.Inclusive {
			continue
		}
		if ((x-t.Base)%s+s)%s == 0 {
			asc = append(asc, x)
		}
	}
	if t.Step > 0 {
		return asc
	}
	desc := make([]int, len(asc))
	for i, v := range asc {
		desc[len(asc)-1-i] = v
	}

	return desc
}

// refSlice applies slice semantics to vals by walking indices one at a time.
func refSlice(vals []int, start, stop, step lusbir.Index) []int {
	n := len(vals)
	k, ok := step.Value()
	if !ok {
		k = 1
	}
	resolve := func(x lusbir.Index, def int) int {
		i, set := x.Value()
		if !set {
			return def
		}
		if i < 0 {
			i += n
		}
		if k > 0 {
			i = min(max(i, 0), n)
		} else {
			i = min(max(i, -1), n-1)
		}

		return i
	}

	out := []int{}
	if k > 0 {
		for i := resolve(start, 0); i < resolve(stop, n); i += k {
			out = append(out, vals[i])
		}
	} else {
		for i := resolve(start, n-1); i > resolve(stop, -1); i += k {
			out = append(out, vals[i])
		}
	}

	return out
}
