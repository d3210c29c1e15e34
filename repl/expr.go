package repl

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ibr/memory"
)

// eval evaluates a command argument as a Starlark expression.
// The names ptr, byte and char describe the cell under the cursor.
func (r *REPL) eval(expr string) (value any, err error) {
	in := r.Interpreter

	thread := &starlark.Thread{Name: "repl"}
	opts := &syntax.FileOptions{}
	env := starlark.StringDict{
		"ptr":  starlark.MakeInt(in.Pointer()),
		"byte": starlark.MakeInt(in.Byte()),
		"char": starlark.String(string(in.Char())),
	}

	st_value, err := starlark.EvalOptions(opts, thread, "expr", expr, env)
	if err != nil {
		return
	}

	switch st_value := st_value.(type) {
	case starlark.Int:
		st_int64, ok := st_value.Int64()
		if !ok {
			value = st_value.String()
			return
		}
		value = st_int64
	case starlark.Float:
		value = float64(st_value)
	case starlark.String:
		value = string(st_value)
	default:
		value = st_value
	}

	return
}

// address evaluates expr as a cell address.
func (r *REPL) address(expr string) (address int, err error) {
	v, err := r.eval(expr)
	if err != nil {
		return
	}

	return memory.AddressOf(v)
}
