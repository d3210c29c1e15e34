package memory

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Mode selects how cell arithmetic and rendering behave.
type Mode int

const (
	// MODE_UNBOUNDED cells hold any int. Values that are Unicode scalars
	// render as themselves; anything else renders as the UTF-16 code unit
	// of the value modulo 65536.
	MODE_UNBOUNDED = Mode(iota)
	// MODE_BYTE cells wrap modulo 256 on every store, and render as the
	// Latin-1 code point of the byte.
	MODE_BYTE
)

var modeNames = map[string]Mode{
	"unbounded": MODE_UNBOUNDED,
	"byte":      MODE_BYTE,
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(name string) (mode Mode, err error) {
	mode, ok := modeNames[name]
	if !ok {
		err = ErrModeInvalid
	}
	return
}

func (mode Mode) String() string {
	switch mode {
	case MODE_UNBOUNDED:
		return "unbounded"
	case MODE_BYTE:
		return "byte"
	}
	return "invalid"
}

// normalize brings a value into the range stored by the mode.
func (mode Mode) normalize(value int) int {
	if mode == MODE_BYTE {
		return ((value % 256) + 256) % 256
	}
	return value
}

// Render maps a cell value to the character it prints as.
func (mode Mode) Render(value int) rune {
	if mode == MODE_BYTE {
		return rune(mode.normalize(value))
	}

	if value >= 0 && value <= unicode.MaxRune {
		if char := rune(value); utf8.ValidRune(char) {
			return char
		}
		return utf8.RuneError
	}

	unit := rune(uint16(value))
	if utf16.IsSurrogate(unit) {
		return utf8.RuneError
	}
	return unit
}
