// Package io provides the console collaborators of the ibr interpreter:
// a character Tape over byte streams, and the source loader.
package io

// Console is the character level input and output used by the interpreter.
type Console interface {
	// ReadChar blocks until one character is available.
	ReadChar() (char rune, err error)
	// WriteChar emits one character immediately.
	WriteChar(char rune) error
}
