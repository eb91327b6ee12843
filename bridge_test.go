// SPDX-License-Identifier: MIT

package lusbir_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lusbir"
	"github.com/katalvlaran/lusbir/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangeValues enumerates a conventional stepped range with small bounds.
func rangeValues(r lusbir.SteppedRange) []int {
	out := []int{}
	if r.Step > 0 {
		for v := r.Start; v < r.Stop; v += r.Step {
			out = append(out, v)
		}
	} else {
		for v := r.Start; v > r.Stop; v += r.Step {
			out = append(out, v)
		}
	}

	return out
}

// TestToSteppedRange_RoundTrip checks the lossy direction and its inverse.
func TestToSteppedRange_RoundTrip(t *testing.T) {
	l := mustTuple(t, tuple(core.Inclusive(0), core.Exclusive(10), 2, 1))

	r, err := l.ToSteppedRange()
	require.NoError(t, err)
	assert.Equal(t, lusbir.SteppedRange{Start: 1, Stop: 11, Step: 2}, r)
	assert.Equal(t, "range(1, 11, 2)", r.String())

	back, err := lusbir.FromSteppedRange(1, 11, 2)
	require.NoError(t, err)
	assert.True(t, back.Equal(l))
	assert.NotEqual(t, l.Tuple(), back.Tuple(), "bounds and base are not recovered")

	desc := mustTuple(t, tuple(core.Exclusive(5), core.Inclusive(55), -10, 5))
	r, err = desc.ToSteppedRange()
	require.NoError(t, err)
	assert.Equal(t, lusbir.SteppedRange{Start: 55, Stop: 5, Step: -10}, r)
	assert.Equal(t, desc.Values(), rangeValues(r))
}

// TestToSteppedRange_Empty checks the explicit empty range.
func TestToSteppedRange_Empty(t *testing.T) {
	l := mustConfig(t, core.ClosedOpen, 0, -10, 3, 0)
	r, err := l.ToSteppedRange()
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, lusbir.SteppedRange{Start: 0, Stop: 0, Step: 3}, r)
}

// TestToSteppedRange_Overflow checks that a stop beyond MaxInt is reported.
func TestToSteppedRange_Overflow(t *testing.T) {
	l := mustConfig(t, core.Closed, math.MaxInt-1, math.MaxInt, 1, 0)
	_, err := l.ToSteppedRange()
	assert.ErrorIs(t, err, lusbir.ErrArithmeticOverflow)
}

// TestFromSteppedRange checks conventional ranges in both directions.
func TestFromSteppedRange(t *testing.T) {
	cases := []lusbir.SteppedRange{
		{Start: 0, Stop: 10, Step: 1},
		{Start: 5, Stop: 55, Step: 10},
		{Start: 10, Stop: 0, Step: -1},
		{Start: 10, Stop: 0, Step: 1},
		{Start: -3, Stop: 17, Step: 4},
		{Start: 17, Stop: -3, Step: -4},
		{Start: 0, Stop: 0, Step: 5},
		{Start: 3, Stop: 4, Step: -7},
	}
	for _, r := range cases {
		l, err := lusbir.FromRange(r)
		require.NoError(t, err)
		assert.Equal(t, rangeValues(r), l.Values(), "%v", r)
		assert.Equal(t, r.IsEmpty(), l.IsEmpty())

		back, err := l.ToSteppedRange()
		require.NoError(t, err)
		assert.Equal(t, rangeValues(r), rangeValues(back))
	}

	_, err := lusbir.FromSteppedRange(0, 10, 0)
	assert.ErrorIs(t, err, core.ErrInvalidStep)
	assert.True(t, lusbir.SteppedRange{Start: 1, Stop: 9}.IsEmpty())
}
