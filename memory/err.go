package memory

import (
	"errors"

	"github.com/ezrec/ibr/translate"
)

var f = translate.From

var (
	ErrInvalidValue   = errors.New(f("invalid value"))
	ErrInvalidAddress = errors.New(f("invalid memory address"))
	ErrModeInvalid    = errors.New(f("invalid cell mode"))
)

// ErrValueLength is returned when a character value is not exactly one character.
type ErrValueLength string

func (err ErrValueLength) Error() string {
	return f("expected a string of length 1, received '%v'", string(err))
}

func (err ErrValueLength) Is(target error) bool {
	return target == ErrInvalidValue
}

// ErrValueType is returned when a dynamic value is neither a number nor a character.
type ErrValueType string

func (err ErrValueType) Error() string {
	return f("invalid value %v, only numbers and characters allowed", string(err))
}

func (err ErrValueType) Is(target error) bool {
	return target == ErrInvalidValue
}

// ErrAddress is returned when a dynamic address is not an integer.
type ErrAddress string

func (err ErrAddress) Error() string {
	return f("invalid memory position %v, only integers allowed", string(err))
}

func (err ErrAddress) Is(target error) bool {
	return target == ErrInvalidAddress
}
