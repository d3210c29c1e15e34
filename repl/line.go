package repl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	ibrio "github.com/ezrec/ibr/io"
)

// LineReader reads one line of input after displaying a prompt.
type LineReader interface {
	ReadLine(prompt string) (line string, err error)
}

// Plain reads lines from a byte stream, without editing.
// Input is read one byte at a time, so bytes after the newline are left
// for other readers of the same stream.
type Plain struct {
	Input  io.Reader
	Output io.Writer
}

// NewPlain creates a line reader for pipes and dumb terminals.
func NewPlain(input io.Reader, output io.Writer) *Plain {
	return &Plain{Input: input, Output: output}
}

func (pl *Plain) ReadLine(prompt string) (line string, err error) {
	_, err = fmt.Fprint(pl.Output, prompt)
	if err != nil {
		return
	}

	var buf []byte
	for {
		var one [1]byte
		var n int
		n, err = pl.Input.Read(one[:])
		if n == 1 {
			err = nil
			if one[0] == '\n' {
				break
			}
			buf = append(buf, one[0])
			continue
		}
		if err == io.EOF && len(buf) > 0 {
			err = nil
			break
		}
		if err != nil {
			return
		}
	}

	line = strings.TrimSuffix(string(buf), "\r")
	return
}

// Terminal reads lines with editing and history.
// The underlying terminal should be in raw mode.
//
// Terminal is also a character console. Character input goes through the
// same line editor, so keys typed ahead are never split between readers.
type Terminal struct {
	term    *term.Terminal
	pending []rune
}

var _ ibrio.Console = (*Terminal)(nil)

// NewTerminal creates a line editor over rw.
func NewTerminal(rw io.ReadWriter) *Terminal {
	return &Terminal{term: term.NewTerminal(rw, "")}
}

func (tl *Terminal) ReadLine(prompt string) (line string, err error) {
	tl.term.SetPrompt(prompt)
	return tl.term.ReadLine()
}

// Write writes to the terminal, translating newlines for raw mode.
func (tl *Terminal) Write(data []byte) (int, error) {
	return tl.term.Write(data)
}

// ReadChar reads one character. Input is line buffered: a line is edited
// in full, then handed out a character at a time, ending with a newline.
func (tl *Terminal) ReadChar() (char rune, err error) {
	if len(tl.pending) == 0 {
		var line string
		line, err = tl.ReadLine("")
		if err != nil {
			return
		}
		tl.pending = append([]rune(line), '\n')
	}

	char = tl.pending[0]
	tl.pending = tl.pending[1:]
	return
}

// WriteChar writes the UTF-8 encoding of char.
func (tl *Terminal) WriteChar(char rune) (err error) {
	_, err = tl.Write(utf8.AppendRune(nil, char))
	return
}
