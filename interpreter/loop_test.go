package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopBlock(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		code  string
		block string
		body  string
		err   error
	}{
		{"[[a]b]c", "[[a]b]", "[a]b", nil},
		{"[]", "[]", "", nil},
		{"[-]]", "[-]", "-", nil},
		{"[>[-]<[+]]++", "[>[-]<[+]]", ">[-]<[+]", nil},
		{"[ab", "", "", ErrUnclosed(1)},
		{"[[[]", "", "", ErrUnclosed(2)},
		{"[", "", "", ErrUnclosed(1)},
		{"ab", "", "", ErrLoopStart},
		{"", "", "", ErrLoopStart},
	}

	for _, entry := range table {
		block, body, err := LoopBlock(entry.code)
		assert.Equal(entry.err, err, entry.code)
		assert.Equal(entry.block, block, entry.code)
		assert.Equal(entry.body, body, entry.code)
	}

	block, _, _ := LoopBlock("[[a]b]c")
	assert.Len(block, 6)
}

func TestOp(t *testing.T) {
	assert := assert.New(t)

	for _, symbol := range "<>-+.,[]#" {
		op := OpOf(symbol)
		assert.NotEqual(OP_INVALID, op, string(symbol))
		assert.Equal(string(symbol), op.String())
	}

	assert.Equal(OP_INVALID, OpOf('z'))
	assert.Equal(OP_INVALID, OpOf(' '))
	assert.Equal("invalid", OP_INVALID.String())
	assert.Equal("Op(42)", Op(42).String())
}

func TestIsCode(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsCode("+-<>[],.#"))
	assert.True(IsCode(""))
	assert.False(IsCode("pointer"))
	assert.False(IsCode("+ +"))
	assert.False(IsCode("+a"))
}
