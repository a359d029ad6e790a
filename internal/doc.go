// Package internal holds the generic helpers behind the opcode and keyword
// tables: default-valued map lookup, and iterator concatenation used to walk
// grouped tables as a single sequence.
package internal
