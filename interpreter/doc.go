// Package interpreter implements the execution engine of the ibr tape language.
//
// An Interpreter owns a memory and a single cursor. Run scans an instruction
// stream left to right and mutates the memory and cursor per symbol:
//
//	<  move the cursor left        >  move the cursor right
//	-  decrement the cell          +  increment the cell
//	.  write the cell's character  ,  read a character into the cell
//	[  loop while the cell is non-zero, up to the matching ]
//	#  open an interactive session on the live interpreter
//
// Loop bodies are run by recursion on the same cursor and memory. The loop
// guard is re-checked after every full pass through the body, at whatever
// cursor position the body left behind.
package interpreter
