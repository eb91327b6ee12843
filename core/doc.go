// Package core defines the value types that characterise a lusbir: Bound,
// BoundType and LusbTuple, together with the Config used to assemble them.
//
// A lusbir is described by four independent pieces of information:
//
//   - a lower Bound (number + inclusive flag),
//   - an upper Bound (number + inclusive flag),
//   - a nonzero step,
//   - a base.
//
// The represented values are every integer x between the bounds such that
// x = n·step + base for some integer n. The arithmetic lives one level up, in
// package lusbir; core only holds and validates the description.
//
// Bound types:
//
//	"[)" ClosedOpen  — lower inclusive, upper exclusive (default)
//	"()" Open        — both exclusive
//	"(]" OpenClosed  — lower exclusive, upper inclusive
//	"[]" Closed      — both inclusive
//
// Construction surface:
//
//	cfg := core.DefaultConfig()
//	cfg.Lower, cfg.Upper, cfg.Step, cfg.Base = 0, 10, 2, 1
//	t, err := cfg.Tuple() // LusbTuple{[0, 10), 2, 1}
//
// ConfigFromArgs resolves the positional forms a shell or REPL would offer
// ("10", "0 10 2", "(] 0 10 2 1") into the same Config.
//
// Errors:
//
//	ErrInvalidStep      — step is zero.
//	ErrBadBoundType     — bound-type tag is not one of "()", "(]", "[)", "[]".
//	ErrInvalidArguments — positional arguments have the wrong arity or type.
package core
