// SPDX-License-Identifier: MIT

package lusbir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/lusbir/core"
)

// String renders l as a constructor literal that Parse reads back into the
// same tuple:
//
//	Lusbir('[)', 0, 10)
//	Lusbir('(]', 5, 55, -10)
//	Lusbir('[]', -10, 10, 3, -10)
//
// The step is written when it differs from 1 or when a base follows; the base
// is written when it differs from 0.
func (l Lusbir) String() string {
	t := l.tuple

	var b strings.Builder
	fmt.Fprintf(&b, "Lusbir('%s', %d, %d", t.BoundType(), t.Lower.Number, t.Upper.Number)
	switch {
	case t.Base != core.DefaultBase:
		fmt.Fprintf(&b, ", %d, %d", t.Step, t.Base)
	case t.Step != core.DefaultStep:
		fmt.Fprintf(&b, ", %d", t.Step)
	}
	b.WriteByte(')')

	return b.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (l Lusbir) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (l *Lusbir) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// literalGrammar accepts either the call form produced by String, whose
// arguments are comma-separated, or the bare positional form: an optional
// bound-type tag followed by one to four integers, separated by commas or
// whitespace.
type literalGrammar struct {
	Call *callArgs    `parser:"\"Lusbir\" \"(\" @@ \")\""`
	Bare *literalArgs `parser:"| @@"`
}

type callArgs struct {
	Tag  *string  `parser:"( @Tag \",\" )?"`
	Nums []string `parser:"@Int ( \",\" @Int )*"`
}

type literalArgs struct {
	Tag  *string  `parser:"( @Tag \",\"? )?"`
	Nums []string `parser:"@Int ( \",\"? @Int )*"`
}

// literalLexer tokenises lusbir literals. Tag must precede Punct so that "()"
// is read as a bound type rather than two parentheses. Int runs up to the next
// separator, so "10-3" is one token that fails conversion instead of two
// integers.
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Tag", Pattern: `'(?:\[\)|\(\)|\(\]|\[\])'|"(?:\[\)|\(\)|\(\]|\[\])"|(?:\[\)|\(\)|\(\]|\[\])`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?[0-9]+[^\s,()]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// literalParser is the participle parser for lusbir literals.
var literalParser = participle.MustBuild[literalGrammar](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a lusbir literal. Accepted forms:
//
//	Lusbir('[)', 0, 10, 2, 1)   // as written by String
//	Lusbir(0, 10, 2)            // tag omitted, defaults apply
//	(] 5 55 -10 5               // bare positional
//	10                          // upper bound only
//
// Errors:
//   - ErrSyntax for text outside the grammar or integers that do not fit.
//   - core.ErrInvalidArguments for a wrong number of values.
//   - core.ErrInvalidStep for a zero step.
func Parse(s string) (Lusbir, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Lusbir{}, fmt.Errorf("empty literal: %w", ErrSyntax)
	}

	parsed, err := literalParser.ParseString("", s)
	if err != nil {
		return Lusbir{}, fmt.Errorf("%q: %w: %w", s, ErrSyntax, err)
	}
	args := parsed.Bare
	if parsed.Call != nil {
		call := literalArgs(*parsed.Call)
		args = &call
	}

	bt := core.DefaultBoundType
	if args.Tag != nil {
		bt, err = core.ParseBoundType(strings.Trim(*args.Tag, `'"`))
		if err != nil {
			return Lusbir{}, fmt.Errorf("%q: %w: %w", s, ErrSyntax, err)
		}
	}

	nums := make([]int, len(args.Nums))
	for i, raw := range args.Nums {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Lusbir{}, fmt.Errorf("%q: %w: %w", s, ErrSyntax, err)
		}
		nums[i] = n
	}

	cfg, err := core.ConfigFromInts(bt, args.Tag != nil, nums)
	if err != nil {
		return Lusbir{}, err
	}

	return New(cfg)
}

// MustParse is Parse that panics on error.
func MustParse(s string) Lusbir {
	l, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("lusbir: MustParse(%q): %v", s, err))
	}

	return l
}
