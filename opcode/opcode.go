// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"fmt"

	"github.com/ezrec/vmasm/internal"
)

// Op is a symbolic virtual machine operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_EXIT          = Op(0)  // exit
	OP_INT_STORE     = Op(1)  // int_store
	OP_INT_PRINT     = Op(2)  // int_print
	OP_INT_TOSTRING  = Op(3)  // int_tostring
	OP_INT_RANDOM    = Op(4)  // int_random
	OP_JUMP_TO       = Op(5)  // jump_to
	OP_JUMP_Z        = Op(6)  // jump_z
	OP_JUMP_NZ       = Op(7)  // jump_nz
	OP_XOR           = Op(8)  // xor
	OP_ADD           = Op(9)  // add
	OP_SUB           = Op(10) // sub
	OP_MUL           = Op(11) // mul
	OP_DIV           = Op(12) // div
	OP_INC           = Op(13) // inc
	OP_DEC           = Op(14) // dec
	OP_AND           = Op(15) // and
	OP_OR            = Op(16) // or
	OP_STRING_STORE  = Op(17) // string_store
	OP_STRING_PRINT  = Op(18) // string_print
	OP_STRING_CONCAT = Op(19) // string_concat
	OP_STRING_SYSTEM = Op(20) // string_system
	OP_STRING_TOINT  = Op(21) // string_toint
	OP_CMP_REG       = Op(22) // cmp_reg
	OP_CMP_IMMEDIATE = Op(23) // cmp_immediate
	OP_CMP_STRING    = Op(24) // cmp_string
	OP_IS_STRING     = Op(25) // is_string
	OP_IS_INTEGER    = Op(26) // is_integer
	OP_NOP           = Op(27) // nop
	OP_REG_STORE     = Op(28) // reg_store
	OP_PEEK          = Op(29) // peek
	OP_POKE          = Op(30) // poke
	OP_MEMCPY        = Op(31) // memcpy
	OP_STACK_PUSH    = Op(32) // stack_push
	OP_STACK_POP     = Op(33) // stack_pop
	OP_STACK_RET     = Op(34) // stack_ret
	OP_STACK_CALL    = Op(35) // stack_call
	OP_TRAP          = Op(36) // trap
)

// OP_COUNT is the number of declared operations.
const OP_COUNT = int(OP_TRAP) + 1

// Valid returns true if the Op is part of the declared enumeration.
func (op Op) Valid() bool {
	return op >= OP_EXIT && op <= OP_TRAP
}

// Group is the instruction family of a Code, taken from its leading nibble.
type Group int

//go:generate go tool stringer -linecomment -type=Group
const (
	GROUP_INT    = Group(0) // int
	GROUP_JUMP   = Group(1) // jump
	GROUP_MATH   = Group(2) // math
	GROUP_STRING = Group(3) // string
	GROUP_CMP    = Group(4) // cmp
	GROUP_MISC   = Group(5) // misc
	GROUP_MEMORY = Group(6) // memory
	GROUP_STACK  = Group(7) // stack
	GROUP_TRAP   = Group(8) // trap
)

// Code is a one byte instruction code, as found in the assembled binary.
type Code uint8

// Group returns the instruction family of the code.
func (code Code) Group() Group {
	return Group(code >> 4)
}

// String returns the name of the operation the code decodes to.
func (code Code) String() string {
	op := internal.FindOrDefault(defaultTable.decode, code, Op(-1))
	if !op.Valid() {
		return fmt.Sprintf("Code(%#02x)", uint8(code))
	}

	return op.String()
}
