// Package memory implements the unbounded cell store of the ibr interpreter.
//
// Cells are addressed by signed integers in both directions. An address
// that has never been touched reads as 0, and any read or write
// materialises it, so a touched address is never absent afterwards.
package memory
