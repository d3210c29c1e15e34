package interpreter

// Op is an instruction of the tape language.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INVALID = Op(0) // invalid
	OP_LEFT    = Op(1) // <
	OP_RIGHT   = Op(2) // >
	OP_DEC     = Op(3) // -
	OP_INC     = Op(4) // +
	OP_OUTPUT  = Op(5) // .
	OP_INPUT   = Op(6) // ,
	OP_LOOP    = Op(7) // [
	OP_END     = Op(8) // ]
	OP_SESSION = Op(9) // #
)

// OpOf classifies a source symbol.
func OpOf(symbol rune) Op {
	switch symbol {
	case '<':
		return OP_LEFT
	case '>':
		return OP_RIGHT
	case '-':
		return OP_DEC
	case '+':
		return OP_INC
	case '.':
		return OP_OUTPUT
	case ',':
		return OP_INPUT
	case '[':
		return OP_LOOP
	case ']':
		return OP_END
	case '#':
		return OP_SESSION
	}

	return OP_INVALID
}

// IsCode reports whether line consists only of instruction symbols.
func IsCode(line string) bool {
	for _, symbol := range line {
		if OpOf(symbol) == OP_INVALID {
			return false
		}
	}

	return true
}
