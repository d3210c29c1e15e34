package repl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ibr/interpreter"
)

func newTerminal(input string) (screen *Terminal, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	screen = NewTerminal(struct {
		io.Reader
		io.Writer
	}{strings.NewReader(input), output})
	return
}

func TestTerminal_ReadChar(t *testing.T) {
	assert := assert.New(t)

	// The whole input arrives in one read, so the editor holds the
	// characters after the first line.
	screen, _ := newTerminal("ab\rc☺\r")

	line, err := screen.ReadLine("> ")
	assert.NoError(err)
	assert.Equal("ab", line)

	for _, expect := range []rune{'c', '☺', '\n'} {
		char, err := screen.ReadChar()
		assert.NoError(err)
		assert.Equal(expect, char)
	}

	_, err = screen.ReadChar()
	assert.ErrorIs(err, io.EOF)
}

func TestTerminal_WriteChar(t *testing.T) {
	assert := assert.New(t)

	screen, output := newTerminal("")

	assert.NoError(screen.WriteChar('☺'))
	assert.NoError(screen.WriteChar('\n'))
	assert.Equal("☺\r\n", output.String())
}

func TestTerminal_Console(t *testing.T) {
	assert := assert.New(t)

	// The character for ',' comes from the line after the code.
	screen, _ := newTerminal(",\rx\rexit\r")

	in := interpreter.NewInterpreter(screen)
	r := New(in, screen, screen)
	in.Session = r.Session()

	assert.NoError(r.Run(1))
	assert.Equal(int('x'), in.Byte())
	assert.Equal(2, r.Commands())
}
