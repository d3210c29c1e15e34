package interpreter

import (
	"strings"
)

// LoopBlock extracts the loop at the start of code.
// The block runs from the leading '[' to its matching ']', and the body is
// the block without its outer brackets. The symbols inside the body are not
// validated.
func LoopBlock(code string) (block string, body string, err error) {
	if !strings.HasPrefix(code, "[") {
		err = ErrLoopStart
		return
	}

	depth := 0
	for index := 0; index < len(code); index++ {
		switch code[index] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth == 0 {
			block = code[:index+1]
			body = block[1:index]
			return
		}
	}

	err = ErrUnclosed(depth)
	return
}

// loop runs body while the cell under the cursor is non-zero.
func (in *Interpreter) loop(body string, offset int, depth int) (err error) {
	passes := 0
	defer func() {
		log.Debugf("loop at %d: %d passes, pointer %d", offset-1, passes, in.pointer)
	}()

	for in.Memory.Get(in.pointer) != 0 {
		err = in.run(body, offset, depth)
		if err != nil {
			return
		}
		passes++
	}

	return
}
