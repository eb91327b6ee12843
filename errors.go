// SPDX-License-Identifier: MIT

package lusbir

import "errors"

// Sentinel errors for sequence operations. Construction errors from the
// description itself (zero step, bad bound type) come from package core.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()) after
	// negative-index normalisation.
	ErrIndexOutOfRange = errors.New("lusbir: index out of range")

	// ErrValueNotFound indicates that Index was asked for a non-member.
	ErrValueNotFound = errors.New("lusbir: value not in lusbir")

	// ErrArithmeticOverflow indicates a length, step or stop value that does
	// not fit in an int.
	ErrArithmeticOverflow = errors.New("lusbir: arithmetic overflow")

	// ErrZeroSliceStep indicates a slice with an explicit step of zero.
	ErrZeroSliceStep = errors.New("lusbir: slice step cannot be zero")

	// ErrSyntax indicates text that is not a lusbir literal.
	ErrSyntax = errors.New("lusbir: invalid syntax")
)
