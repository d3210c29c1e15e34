// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// Memory is the sparse cell store. Cells are kept in address order.
type Memory struct {
	Mode Mode // Cell arithmetic and rendering mode.

	cells *treemap.Map
}

// New creates an empty memory.
func New(mode Mode) (mem *Memory) {
	mem = &Memory{
		Mode:  mode,
		cells: treemap.NewWithIntComparator(),
	}

	return
}

// materialize ensures the address holds a value, and returns it.
func (mem *Memory) materialize(address int) int {
	value, ok := mem.cells.Get(address)
	if !ok {
		mem.cells.Put(address, 0)
		return 0
	}

	return value.(int)
}

// Get returns the value at address.
func (mem *Memory) Get(address int) int {
	return mem.materialize(address)
}

// Set overwrites the value at address.
func (mem *Memory) Set(address int, value Value) (err error) {
	if value == nil {
		err = ErrValueType("nil")
		return
	}

	code, err := value.code()
	if err != nil {
		return
	}

	mem.materialize(address)
	mem.cells.Put(address, mem.Mode.normalize(code))

	return
}

// Increment adds one to the value at address.
func (mem *Memory) Increment(address int) {
	mem.cells.Put(address, mem.Mode.normalize(mem.materialize(address)+1))
}

// Decrement subtracts one from the value at address.
func (mem *Memory) Decrement(address int) {
	mem.cells.Put(address, mem.Mode.normalize(mem.materialize(address)-1))
}

// Reset clears all cells.
func (mem *Memory) Reset() {
	mem.cells.Clear()
}

// Len returns the count of materialised cells.
func (mem *Memory) Len() int {
	return mem.cells.Size()
}

// Render returns the character for value, per the memory's mode.
func (mem *Memory) Render(value int) rune {
	return mem.Mode.Render(value)
}

// Cells returns the materialised cells in ascending address order.
func (mem *Memory) Cells() iter.Seq2[int, int] {
	return func(yield func(address int, value int) bool) {
		it := mem.cells.Iterator()
		for it.Next() {
			if !yield(it.Key().(int), it.Value().(int)) {
				return
			}
		}
	}
}
