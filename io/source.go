package io

import (
	"io"
	"strings"
	"unicode"
)

// Source reads a whole program, removing all whitespace.
func Source(r io.Reader) (code string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	code = StripSpace(string(data))
	return
}

// StripSpace removes all whitespace from text.
func StripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
