package io

import (
	"io"
	"unicode/utf8"
)

// Tape provides character I/O over byte streams.
// Input is read one byte at a time, so no bytes beyond the current
// character are consumed from the reader.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Console = (*Tape)(nil)

// ReadChar reads a single UTF-8 encoded character.
// Invalid encodings yield utf8.RuneError.
func (tc *Tape) ReadChar() (char rune, err error) {
	var buf [utf8.UTFMax]byte
	var n int

	for n < len(buf) {
		var one [1]byte
		var count int
		count, err = tc.Input.Read(one[:])
		if count == 0 {
			if err == nil {
				continue
			}
			if n > 0 && err == io.EOF {
				err = nil
				break
			}
			return
		}
		err = nil
		buf[n] = one[0]
		n++
		if utf8.FullRune(buf[:n]) {
			break
		}
	}

	char, _ = utf8.DecodeRune(buf[:n])

	return
}

// WriteChar writes the UTF-8 encoding of char.
func (tc *Tape) WriteChar(char rune) (err error) {
	_, err = tc.Output.Write(utf8.AppendRune(nil, char))
	return
}
