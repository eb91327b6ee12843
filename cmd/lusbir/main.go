// SPDX-License-Identifier: MIT

// Command lusbir inspects lusbirs from the shell.
//
// Every command takes the lusbir as trailing arguments, either as a literal
// or as positional values:
//
//	lusbir list 'Lusbir('"'"'(]'"'"', 5, 55, -10, 5)'
//	lusbir list '(]' 5 55 -10 5
//	lusbir at --index=-1 0 10 2 1
//	lusbir list -- -20 -10          # "--" before values starting with '-'
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// CLI defines the command-line interface for lusbir.
type CLI struct {
	Debug bool `help:"Log resolution details to stderr."`

	List     ListCmd     `cmd:"" help:"List the values in iteration order"`
	Len      LenCmd      `cmd:"" help:"Print the number of values"`
	At       AtCmd       `cmd:"" help:"Print the value at an index (negative counts from the end)"`
	Contains ContainsCmd `cmd:"" help:"Report whether a value is a member"`
	Index    IndexCmd    `cmd:"" help:"Print the position of a value"`
	Slice    SliceCmd    `cmd:"" help:"Slice with start:stop:step semantics"`
	Range    RangeCmd    `cmd:"" help:"Convert to a conventional stepped range"`
	Parse    ParseCmd    `cmd:"" help:"Print the canonical literal, tuple and length"`
	Hash     HashCmd     `cmd:"" help:"Print the BLAKE3 digest of the represented values"`
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	out io.Writer
	log *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("lusbir"),
		kong.Description("Integer sequences characterised by bounds, step and base"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		fmt.Fprintln(stderr, "lusbir:", err)

		return exitUsage
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "lusbir:", err)

		return exitUsage
	}

	logger := newLogger(cli.Debug, stderr)
	defer func() { _ = logger.Sync() }()

	if err := ctx.Run(&runEnv{out: stdout, log: logger}); err != nil {
		logger.Debug("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		fmt.Fprintln(stderr, "lusbir:", err)

		return exitFailure
	}

	return exitOK
}

// newLogger returns a JSON logger at warn level, or a console logger at debug
// level when debug is set. Both write to w.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.WarnLevel
	if debug {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
