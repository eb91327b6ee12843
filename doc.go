// Package lusbir provides lusbirs: immutable integer sequences characterised
// by a lower bound, an upper bound, a step and a base.
//
// 🚀 What is a lusbir?
//
//	A lusbir represents every integer x such that
//	  • x lies between the lower and upper bound (each inclusive or exclusive),
//	  • x = n·step + base for some integer n.
//	A positive step lists the values in ascending order, a negative step in
//	descending order. Every value appears once.
//
//	[0, 10)  step 2  base 1   → [1 3 5 7 9]
//	(5, 55]  step -10 base 5  → [55 45 35 25 15]
//
// ✨ Key features:
//   - O(1) Len, At, Contains, Index, Count, Equal and Hash via modular arithmetic
//   - Python-style negative indices and slicing (Slice(start, stop, step))
//   - lazy forward/backward iteration (iter.Seq) and a gods-compatible Iterator
//   - equality and hashing by represented values, not by parameters
//   - lossy bridge to/from a conventional half-open stepped range
//   - textual form Lusbir('[)', 0, 10, 2, 1) with a round-tripping Parse
//   - no silent wraparound: results outside int fail with ErrArithmeticOverflow
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lusbir"
//	  "github.com/katalvlaran/lusbir/core"
//	)
//
//	cfg := core.DefaultConfig()
//	cfg.Upper, cfg.Step, cfg.Base = 10, 2, 1
//	l, err := lusbir.New(cfg)     // [1 3 5 7 9]
//	v, _ := l.At(-1)              // 9
//	ok := l.Contains(7)           // true
//	r, _ := l.ToSteppedRange()    // range(1, 11, 2)
//
// Values are immutable and hold no resources; a Lusbir may be shared across
// goroutines without synchronisation.
//
// Subpackages:
//
//	core/             — Bound, BoundType, LusbTuple, Config and positional-argument resolution
//	internal/checked/ — overflow-aware integer helpers
//	cmd/lusbir/       — command-line front end
package lusbir
