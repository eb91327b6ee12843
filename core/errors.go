// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core. Callers match them with errors.Is; context is
// attached at the call site with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidStep indicates a LusbTuple with a step of zero.
	ErrInvalidStep = errors.New("core: step must be nonzero")

	// ErrBadBoundType indicates an unknown bound-type tag.
	ErrBadBoundType = errors.New("core: invalid bound type")

	// ErrInvalidArguments indicates positional arguments that cannot be
	// resolved into a Config (wrong count or non-integer values).
	ErrInvalidArguments = errors.New("core: invalid lusbir arguments")
)
