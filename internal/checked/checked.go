// SPDX-License-Identifier: MIT

// Package checked holds the integer primitives used by the lusbir normalizer.
//
// Every helper either returns an exact result or reports ok=false; nothing in
// here wraps silently. Magnitudes and spans are carried as uint64 so that
// quantities such as |MinInt| or MaxInt-MinInt stay representable.
package checked

import "math"

// Add returns a+b, or ok=false if the sum does not fit in an int.
func Add(a, b int) (sum int, ok bool) {
	sum = a + b
	// overflow iff both operands share a sign that the result lost
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, false
	}

	return sum, true
}

// Sub returns a-b, or ok=false if the difference does not fit in an int.
func Sub(a, b int) (diff int, ok bool) {
	diff = a - b
	if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
		return 0, false
	}

	return diff, true
}

// Mul returns a*b, or ok=false if the product does not fit in an int.
func Mul(a, b int) (prod int, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod = a * b
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	if prod/b != a {
		return 0, false
	}

	return prod, true
}

// Neg returns -a, or ok=false for MinInt.
func Neg(a int) (int, bool) {
	if a == math.MinInt {
		return 0, false
	}

	return -a, true
}

// Abs returns |a| as an unsigned magnitude. Abs(MinInt) is 1<<63.
func Abs(a int) uint64 {
	u := uint64(a)
	if a < 0 {
		u = -u
	}

	return u
}

// Span returns hi-lo for lo <= hi. The result always fits in a uint64.
func Span(lo, hi int) uint64 {
	return uint64(hi) - uint64(lo)
}

// Mod returns the non-negative remainder of a modulo m, in [0, m).
// m must be positive.
func Mod(a int, m uint64) uint64 {
	if a >= 0 {
		return uint64(a) % m
	}
	r := Abs(a) % m
	if r == 0 {
		return 0
	}

	return m - r
}

// Residue returns (a - b) mod m in [0, m) without forming a - b.
func Residue(a, b int, m uint64) uint64 {
	ra, rb := Mod(a, m), Mod(b, m)
	if ra >= rb {
		return ra - rb
	}

	return ra + (m - rb)
}

// Offset returns base+delta where the caller guarantees that the true sum is
// a representable int (for example, an element between two known bounds).
func Offset(base int, delta uint64) int {
	return int(uint64(base) + delta)
}

// ToInt converts u to an int, or reports ok=false if it exceeds MaxInt.
func ToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}

	return int(u), true
}
