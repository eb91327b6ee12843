// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied by DefaultConfig and by the positional forms of
// ConfigFromArgs when trailing values are omitted.
const (
	DefaultBoundType = ClosedOpen
	DefaultLower     = 0
	DefaultStep      = 1
	DefaultBase      = 0
)

// Config is the named-field form of the lusbir constructor.
//
// Fields:
//   - BoundType — inclusivity of the bounds; default ClosedOpen "[)".
//   - Lower     — numeric lower bound; default 0.
//   - Upper     — numeric upper bound; always meaningful, there is no default.
//   - Step      — nonzero step; default 1.
//   - Base      — base; default 0.
//
// Start from DefaultConfig and overwrite the fields you need: the zero Config
// has Step == 0 and is rejected by Tuple.
type Config struct {
	BoundType BoundType
	Lower     int
	Upper     int
	Step      int
	Base      int
}

// DefaultConfig returns a Config describing the empty lusbir [0, 0) with
// step 1 and base 0.
func DefaultConfig() Config {
	return Config{
		BoundType: DefaultBoundType,
		Lower:     DefaultLower,
		Step:      DefaultStep,
		Base:      DefaultBase,
	}
}

// Tuple assembles and validates the LusbTuple described by c.
func (c Config) Tuple() (LusbTuple, error) {
	if !c.BoundType.Valid() {
		return LusbTuple{}, fmt.Errorf("%v: %w", c.BoundType, ErrBadBoundType)
	}
	lowerIncl, upperIncl := c.BoundType.Inclusivities()

	return NewTuple(
		Bound{Number: c.Lower, Inclusive: lowerIncl},
		Bound{Number: c.Upper, Inclusive: upperIncl},
		c.Step, c.Base,
	)
}

// ConfigOf returns the Config that reproduces t.
func ConfigOf(t LusbTuple) Config {
	return Config{
		BoundType: t.BoundType(),
		Lower:     t.Lower.Number,
		Upper:     t.Upper.Number,
		Step:      t.Step,
		Base:      t.Base,
	}
}

// ConfigFromArgs resolves positional arguments into a Config.
//
// Accepted forms (bracketed values are optional):
//
//	ub
//	lb ub [step [base]]
//	tag lb ub [step [base]]
//
// where tag is one of "()", "(]", "[)", "[]". The step is not validated here;
// Config.Tuple does that.
func ConfigFromArgs(args []string) (Config, error) {
	cfg := DefaultConfig()
	if len(args) == 0 {
		return cfg, fmt.Errorf("no arguments: %w", ErrInvalidArguments)
	}

	rest := args
	tagged := false
	if bt, err := ParseBoundType(strings.TrimSpace(args[0])); err == nil {
		cfg.BoundType = bt
		rest = args[1:]
		tagged = true
	}

	nums := make([]int, len(rest))
	for i, a := range rest {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return cfg, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, a, ErrInvalidArguments)
		}
		nums[i] = n
	}

	return ConfigFromInts(cfg.BoundType, tagged, nums)
}

// ConfigFromInts resolves already-typed positional values. tagged reports
// whether bt was given explicitly; an explicit tag requires both bounds.
func ConfigFromInts(bt BoundType, tagged bool, nums []int) (Config, error) {
	cfg := DefaultConfig()
	cfg.BoundType = bt

	switch {
	case len(nums) == 1 && !tagged:
		cfg.Upper = nums[0]

		return cfg, nil
	case len(nums) >= 2 && len(nums) <= 4:
		cfg.Lower, cfg.Upper = nums[0], nums[1]
		if len(nums) > 2 {
			cfg.Step = nums[2]
		}
		if len(nums) > 3 {
			cfg.Base = nums[3]
		}

		return cfg, nil
	default:
		return cfg, fmt.Errorf("%d numeric arguments (tagged=%t): %w", len(nums), tagged, ErrInvalidArguments)
	}
}
