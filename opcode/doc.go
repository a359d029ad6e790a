// Package opcode defines the instruction set of the virtual machine.
//
// Every symbolic operation (Op) encodes to exactly one byte (Code), and every
// byte in use decodes to exactly one operation. Codes are grouped by their
// leading nibble: integer ops at 0x0x, jumps at 0x1x, arithmetic at 0x2x,
// string ops at 0x3x, comparisons at 0x4x, misc at 0x5x, memory at 0x6x,
// stack at 0x7x and the trap at 0x8x.
//
// The default table is built and validated during package initialization
// and is read-only afterwards, so Encode and Decode are safe for concurrent use.
package opcode
