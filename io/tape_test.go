package io

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTape_ReadChar(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("Aé☺😀")}

	var chars []rune
	for {
		char, err := tape.ReadChar()
		if err == io.EOF {
			break
		}
		assert.NoError(err)
		chars = append(chars, char)
	}

	assert.Equal([]rune{'A', 'é', '☺', '😀'}, chars)
}

func TestTape_ReadChar_Unbuffered(t *testing.T) {
	assert := assert.New(t)

	input := strings.NewReader("ab\nrest")
	tape := &Tape{Input: iotest.OneByteReader(input)}

	char, err := tape.ReadChar()
	assert.NoError(err)
	assert.Equal('a', char)

	// Only one byte was consumed from the underlying reader.
	assert.Equal(6, input.Len())
}

func TestTape_ReadChar_Invalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0xff, 'x', 0xe2, 0x98})}

	char, err := tape.ReadChar()
	assert.NoError(err)
	assert.Equal(utf8.RuneError, char)

	char, err = tape.ReadChar()
	assert.NoError(err)
	assert.Equal('x', char)

	// Truncated sequence at end of input.
	char, err = tape.ReadChar()
	assert.NoError(err)
	assert.Equal(utf8.RuneError, char)

	_, err = tape.ReadChar()
	assert.Equal(io.EOF, err)
}

func TestTape_ReadChar_Error(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	tape := &Tape{Input: iotest.ErrReader(boom)}

	_, err := tape.ReadChar()
	assert.Equal(boom, err)
}

func TestTape_WriteChar(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, char := range "Hi ☺\n" {
		assert.NoError(tape.WriteChar(char))
	}
	assert.NoError(tape.WriteChar(utf8.RuneError))

	assert.Equal("Hi ☺\n�", output.String())
}

func TestSource(t *testing.T) {
	assert := assert.New(t)

	code, err := Source(strings.NewReader("++ >\t-\n[ <\r\n+> ] ."))
	assert.NoError(err)
	assert.Equal("++>-[<+>].", code)

	code, err = Source(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal("", code)

	_, err = Source(iotest.ErrReader(io.ErrUnexpectedEOF))
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
}

func TestStripSpace(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("+-", StripSpace(" +  -\n"))
	assert.Equal("", StripSpace(" \t "))
}
