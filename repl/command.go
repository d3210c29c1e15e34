package repl

import (
	"github.com/ezrec/ibr/memory"
)

var help = [][2]string{
	{"h, help", "shows this help"},
	{"pointer", "displays the pointer's current value"},
	{"peek ADDR", "displays the value at an address"},
	{"poke ADDR VALUE", "sets the value at an address"},
	{"dump", "displays every cell in use"},
	{"reset", "clears the memory and the pointer"},
	{"exit, continue", "exits the repl and returns to the interpreter"},
	{"panic", "exit the interpreter completely"},
}

// command dispatches a non-code line.
func (r *REPL) command(name string, args []string) (done bool, err error) {
	in := r.Interpreter

	switch name {
	case "pointer":
		r.cell(in.Pointer())
	case "panic":
		err = ErrPanic
	case "exit", "continue":
		done = true
	case "help", "h":
		r.help()
	case "reset":
		in.Reset()
		r.cell(in.Pointer())
	case "peek":
		err = r.peek(args)
	case "poke":
		err = r.poke(args)
	case "dump":
		for address, value := range in.Memory.Cells() {
			r.printf("   %d: %d '%c'\n", address, value, in.Memory.Render(value))
		}
	default:
		r.printf("!! unknown command %q, try 'help'\n", name)
	}

	return
}

func (r *REPL) help() {
	width := 0
	for _, entry := range help {
		width = max(width, len(entry[0]))
	}

	for _, entry := range help {
		r.printf("  %-*s  %s\n", width, entry[0], f(entry[1]))
	}
}

// cell displays the cell at address.
func (r *REPL) cell(address int) {
	mem := r.Interpreter.Memory
	value := mem.Get(address)
	r.printf("=> address: %d, byte: %d, char: '%c'\n", address, value, mem.Render(value))
}

func (r *REPL) peek(args []string) (err error) {
	if len(args) != 1 {
		return ErrUsage("peek ADDR")
	}

	address, err := r.address(args[0])
	if err != nil {
		return
	}

	r.cell(address)
	return
}

func (r *REPL) poke(args []string) (err error) {
	if len(args) != 2 {
		return ErrUsage("poke ADDR VALUE")
	}

	address, err := r.address(args[0])
	if err != nil {
		return
	}

	v, err := r.eval(args[1])
	if err != nil {
		return
	}

	value, err := memory.ValueOf(v)
	if err != nil {
		return
	}

	err = r.Interpreter.Memory.Set(address, value)
	if err != nil {
		return
	}

	r.cell(address)
	return
}
