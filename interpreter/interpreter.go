// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interpreter

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/tliron/commonlog"

	ibrio "github.com/ezrec/ibr/io"
	"github.com/ezrec/ibr/memory"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("ibr.interpreter")

// Console is the character I/O collaborator.
type Console ibrio.Console

// Session opens an interactive session on a live interpreter.
// depth is the nesting level of the new session, starting at 1.
type Session func(in *Interpreter, depth int) error

// Interpreter is the execution state of the tape language.
type Interpreter struct {
	Memory  *memory.Memory // Cell store, exclusively owned.
	Console Console        // Character I/O.
	Session Session        // Invoked on '#'. If nil, '#' does nothing.

	pointer int
}

// NewInterpreter creates an interpreter with an empty, unbounded memory.
func NewInterpreter(console Console) (in *Interpreter) {
	in = &Interpreter{
		Memory:  memory.New(memory.MODE_UNBOUNDED),
		Console: console,
	}

	return
}

// Pointer returns the cursor address.
func (in *Interpreter) Pointer() int {
	return in.pointer
}

// Byte returns the value of the cell under the cursor.
func (in *Interpreter) Byte() int {
	return in.Memory.Get(in.pointer)
}

// Char returns the character rendering of the cell under the cursor.
func (in *Interpreter) Char() rune {
	return in.Memory.Render(in.Byte())
}

// Reset clears the memory and returns the cursor to 0.
func (in *Interpreter) Reset() {
	in.Memory.Reset()
	in.pointer = 0
}

// Run executes code at the top level.
func (in *Interpreter) Run(code string) error {
	return in.RunAt(0, code)
}

// RunAt executes code from within a session at the given depth.
// The first error stops execution, and the symbol that caused it has no
// effect.
func (in *Interpreter) RunAt(depth int, code string) (err error) {
	err = in.run(code, 0, depth)

	var syntax *ErrSyntax
	if errors.As(err, &syntax) {
		log.Debugf("%v", err)
	}

	return
}

// run executes code, which starts at offset in the top level stream.
func (in *Interpreter) run(code string, offset int, depth int) (err error) {
	for index := 0; index < len(code); {
		symbol, size := utf8.DecodeRuneInString(code[index:])

		switch OpOf(symbol) {
		case OP_LEFT:
			in.pointer--
		case OP_RIGHT:
			in.pointer++
		case OP_DEC:
			in.Memory.Decrement(in.pointer)
		case OP_INC:
			in.Memory.Increment(in.pointer)
		case OP_OUTPUT:
			err = in.Console.WriteChar(in.Char())
		case OP_INPUT:
			err = in.input()
		case OP_LOOP:
			var block, body string
			block, body, err = LoopBlock(code[index:])
			if err != nil {
				err = &ErrSyntax{Offset: offset + index, Err: err}
				return
			}
			err = in.loop(body, offset+index+1, depth)
			if err != nil {
				return
			}
			index += len(block)
			continue
		case OP_SESSION:
			err = in.session(depth)
		default:
			err = &ErrSyntax{Offset: offset + index, Err: ErrCharacter(symbol)}
		}

		if err != nil {
			return
		}

		index += size
	}

	return
}

// input stores one character from the console under the cursor.
// At end of input the cell is set to 0.
func (in *Interpreter) input() (err error) {
	char, err := in.Console.ReadChar()
	if errors.Is(err, io.EOF) {
		return in.Memory.Set(in.pointer, memory.ByteValue(0))
	}
	if err != nil {
		return
	}

	return in.Memory.Set(in.pointer, memory.CharValue(string(char)))
}

// session hands the live interpreter to the session collaborator.
func (in *Interpreter) session(depth int) (err error) {
	if in.Session == nil {
		log.Debugf("session: none attached at depth %d", depth)
		return
	}

	log.Debugf("session: enter depth %d, pointer %d", depth+1, in.pointer)
	err = in.Session(in, depth+1)
	log.Debugf("session: leave depth %d, pointer %d", depth+1, in.pointer)

	return
}
