// SPDX-License-Identifier: MIT

package main

import (
	"encoding/hex"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lusbir"
)

// seqArgs is the trailing lusbir argument shared by every command.
type seqArgs struct {
	Args []string `arg:"" name:"lusbir" help:"Literal, or positional values: [tag] [lb] ub [step [base]]"`
}

// resolve parses the trailing arguments into a Lusbir.
func (a seqArgs) resolve(env *runEnv) (lusbir.Lusbir, error) {
	text := strings.Join(a.Args, " ")
	l, err := lusbir.Parse(text)
	if err != nil {
		return lusbir.Lusbir{}, err
	}
	env.log.Debug("resolved lusbir",
		zap.String("input", text),
		zap.Stringer("lusbir", l),
		zap.Stringer("tuple", l.Tuple()),
		zap.Int("len", l.Len()),
	)

	return l, nil
}

// ListCmd prints one value per line.
type ListCmd struct {
	Reverse bool    `short:"r" help:"List in reverse order"`
	Limit   int     `default:"1000" help:"Maximum number of values to print (0 for no limit)"`
	Seq     seqArgs `embed:""`
}

func (c *ListCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}

	values := l.All()
	if c.Reverse {
		values = l.Backward()
	}

	printValues(env, values, l.Len(), c.Limit)

	return nil
}

// printValues writes one value per line, stopping after limit values (0 for
// no limit) with a count of the ones left out. values is consumed lazily.
func printValues(env *runEnv, values iter.Seq[int], n, limit int) {
	printed := 0
	for v := range values {
		if limit > 0 && printed == limit {
			fmt.Fprintf(env.out, "... (%d more)\n", n-printed)

			return
		}
		fmt.Fprintln(env.out, v)
		printed++
	}
}

// LenCmd prints the number of values.
type LenCmd struct {
	Seq seqArgs `embed:""`
}

func (c *LenCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, l.Len())

	return nil
}

// AtCmd prints the value at an index.
type AtCmd struct {
	Index int     `short:"i" required:"" help:"Index; negative values count from the end"`
	Seq   seqArgs `embed:""`
}

func (c *AtCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	v, err := l.At(c.Index)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, v)

	return nil
}

// ContainsCmd prints true or false.
type ContainsCmd struct {
	Value int     `short:"v" required:"" help:"Value to look up"`
	Seq   seqArgs `embed:""`
}

func (c *ContainsCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, l.Contains(c.Value))

	return nil
}

// IndexCmd prints the position of a value.
type IndexCmd struct {
	Value int     `short:"v" required:"" help:"Value to look up"`
	Seq   seqArgs `embed:""`
}

func (c *IndexCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	i, err := l.Index(c.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, i)

	return nil
}

// SliceCmd prints the sliced lusbir and its values, one per line. Empty flags
// are omitted slice arguments.
type SliceCmd struct {
	Start string  `help:"Start index (omit for default)"`
	Stop  string  `help:"Stop index (omit for default)"`
	Step  string  `help:"Slice step (omit for 1)"`
	Limit int     `default:"1000" help:"Maximum number of values to print (0 for no limit)"`
	Seq   seqArgs `embed:""`
}

func (c *SliceCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}

	var idx [3]lusbir.Index
	for i, raw := range []string{c.Start, c.Stop, c.Step} {
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("slice argument %q: %w", raw, err)
		}
		idx[i] = lusbir.Idx(n)
	}

	s, err := l.Slice(idx[0], idx[1], idx[2])
	if err != nil {
		return err
	}
	env.log.Debug("sliced",
		zap.Stringer("start", idx[0]),
		zap.Stringer("stop", idx[1]),
		zap.Stringer("step", idx[2]),
		zap.Int("len", s.Len()),
	)
	fmt.Fprintln(env.out, s)
	printValues(env, s.All(), s.Len(), c.Limit)

	return nil
}

// RangeCmd prints the equivalent stepped range.
type RangeCmd struct {
	Seq seqArgs `embed:""`
}

func (c *RangeCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	r, err := l.ToSteppedRange()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, r)

	return nil
}

// ParseCmd prints the canonical literal, the tuple and the length.
type ParseCmd struct {
	Seq seqArgs `embed:""`
}

func (c *ParseCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, l)
	fmt.Fprintln(env.out, l.Tuple())
	fmt.Fprintln(env.out, "len:", l.Len())

	return nil
}

// HashCmd prints the hex BLAKE3 digest.
type HashCmd struct {
	Seq seqArgs `embed:""`
}

func (c *HashCmd) Run(env *runEnv) error {
	l, err := c.Seq.resolve(env)
	if err != nil {
		return err
	}
	d := l.Digest()
	fmt.Fprintln(env.out, hex.EncodeToString(d[:]))

	return nil
}
