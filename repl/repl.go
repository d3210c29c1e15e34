// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl implements the interactive session of the ibr interpreter.
//
// A session reads lines from a LineReader. Lines made only of instruction
// symbols are run on a shared interpreter. Any other line is a command, such
// as 'pointer', 'peek', 'poke' or 'exit'. Sessions nest: a '#' executed from
// a session opens another one, one level deeper, on the same interpreter.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/tliron/commonlog"

	"github.com/ezrec/ibr/interpreter"
	ibrio "github.com/ezrec/ibr/io"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("ibr.repl")

// REPL is a single interactive session.
type REPL struct {
	Name        string                   // Prompt name.
	Interpreter *interpreter.Interpreter // Shared interpreter.
	Lines       LineReader               // Line input.
	Output      io.Writer                // Command output.

	commands int
}

// New creates a session on a live interpreter.
func New(in *interpreter.Interpreter, lines LineReader, output io.Writer) *REPL {
	return &REPL{
		Name:        "ibr",
		Interpreter: in,
		Lines:       lines,
		Output:      output,
	}
}

// Session returns a hook for interpreter.Interpreter.Session that opens a
// nested session configured like this one.
func (r *REPL) Session() interpreter.Session {
	return func(in *interpreter.Interpreter, depth int) error {
		nested := New(in, r.Lines, r.Output)
		nested.Name = r.Name
		return nested.Run(depth)
	}
}

// Prompt returns the prompt for a session at depth.
func (r *REPL) Prompt(depth int) string {
	level := strings.Repeat("sub", max(depth-1, 0)) + "main"
	return fmt.Sprintf("%v(%v):%03d> ", r.Name, level, r.commands)
}

// Commands returns the count of lines read so far.
func (r *REPL) Commands() int {
	return r.commands
}

// Run reads and executes lines until 'exit', 'continue' or end of input.
// Only ErrPanic and input errors end the session with an error.
func (r *REPL) Run(depth int) (err error) {
	log.Debugf("session %d: start", depth)
	defer func() {
		log.Debugf("session %d: done after %d commands", depth, r.commands)
	}()

	for done := false; !done; {
		var line string
		line, err = r.Lines.ReadLine(r.Prompt(depth))
		if errors.Is(err, io.EOF) {
			r.printf("\n")
			err = nil
			return
		}
		if err != nil {
			return
		}

		r.commands++

		done, err = r.Execute(depth, line)
		if err != nil {
			return
		}
	}

	return
}

// Execute runs a single line at depth.
func (r *REPL) Execute(depth int, line string) (done bool, err error) {
	code := ibrio.StripSpace(line)
	if interpreter.IsCode(code) {
		err = r.Interpreter.RunAt(depth, code)
		if err != nil && !errors.Is(err, ErrPanic) {
			r.report(err)
			err = nil
		}
		return
	}

	args, err := shlex.Split(line, false)
	if err != nil {
		r.report(err)
		err = nil
		return
	}

	if len(args) == 0 {
		return
	}

	done, err = r.command(args[0], args[1:])
	if err != nil && !errors.Is(err, ErrPanic) {
		r.report(err)
		err = nil
	}

	return
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprint(r.Output, f(format, args...))
}

func (r *REPL) report(err error) {
	log.Debugf("%v", err)
	r.printf("!! %v\n", err)
}
