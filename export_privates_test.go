// SPDX-License-Identifier: MIT

package lusbir

import "github.com/katalvlaran/lusbir/core"

// Test bridge: exposes the normalised form to lusbir_test without widening
// the public API.

// NormalizedForm returns (count, first, step) of l.
func NormalizedForm(l Lusbir) (count, first, step int) {
	return l.form.count, l.form.first, l.form.step
}

// NormalizeTuple runs the normaliser directly on t.
func NormalizeTuple(t core.LusbTuple) (count, first, step int, err error) {
	f, err := normalize(t)

	return f.count, f.first, f.step, err
}
