package memory

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Value is something that can be stored in a cell.
type Value interface {
	code() (int, error)
}

// ByteValue is a numeric cell value.
type ByteValue int

func (bv ByteValue) code() (int, error) {
	return int(bv), nil
}

// CharValue is a single character, stored as its code point.
type CharValue string

func (cv CharValue) code() (value int, err error) {
	if utf8.RuneCountInString(string(cv)) != 1 {
		err = ErrValueLength(cv)
		return
	}

	r, _ := utf8.DecodeRuneInString(string(cv))
	value = int(r)
	return
}

// integral reports whether v is a whole number that fits in an int.
func integral(v float64) bool {
	if math.IsNaN(v) || v != math.Trunc(v) {
		return false
	}
	return v >= math.MinInt && v < -math.MinInt
}

// ValueOf converts a dynamically typed value into a Value.
func ValueOf(v any) (value Value, err error) {
	switch v := v.(type) {
	case Value:
		value = v
	case int:
		value = ByteValue(v)
	case int64:
		value = ByteValue(v)
	case int32:
		if !utf8.ValidRune(v) {
			err = ErrValueType(fmt.Sprintf("%v", v))
			return
		}
		value = CharValue(string(v))
	case byte:
		value = ByteValue(v)
	case string:
		value = CharValue(v)
	case float64:
		if !integral(v) {
			err = ErrValueType(fmt.Sprintf("%v", v))
			return
		}
		value = ByteValue(int(v))
	default:
		err = ErrValueType(fmt.Sprintf("%v", v))
	}

	return
}

// AddressOf converts a dynamically typed address into a cell address.
func AddressOf(v any) (address int, err error) {
	switch v := v.(type) {
	case int:
		address = v
	case int64:
		address = int(v)
	case float64:
		if !integral(v) {
			err = ErrAddress(fmt.Sprintf("%v", v))
			return
		}
		address = int(v)
	default:
		err = ErrAddress(fmt.Sprintf("%v", v))
	}

	return
}
