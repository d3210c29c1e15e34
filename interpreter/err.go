package interpreter

import (
	"errors"

	"github.com/ezrec/ibr/translate"
)

var f = translate.From

var (
	ErrLoopStart = errors.New(f("loop block must start with '['"))
)

// ErrCharacter is a symbol outside of the instruction set.
type ErrCharacter rune

func (err ErrCharacter) Error() string {
	return f("invalid character %q", rune(err))
}

// ErrUnclosed reports the count of brackets left open at the end of a stream.
type ErrUnclosed int

func (err ErrUnclosed) Error() string {
	return f("%d unclosed brackets", int(err))
}

// ErrSyntax locates a syntax error in the instruction stream.
type ErrSyntax struct {
	Offset int // Byte offset of the offending symbol in the top level stream.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("syntax error at offset %d: %v", err.Offset, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
