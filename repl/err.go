package repl

import (
	"errors"

	"github.com/ezrec/ibr/translate"
)

var f = translate.From

var (
	// ErrPanic aborts every session and the interpreter that opened them.
	ErrPanic = errors.New(f("panic"))
)

// ErrUsage is returned for a command given the wrong arguments.
type ErrUsage string

func (err ErrUsage) Error() string {
	return f("usage: %v", string(err))
}
