// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"iter"
	"slices"
)

// codes is the canonical operation to instruction code assignment.
var codes = map[Op]Code{
	OP_EXIT:         0x00,
	OP_INT_STORE:    0x01,
	OP_INT_PRINT:    0x02,
	OP_INT_TOSTRING: 0x03,
	OP_INT_RANDOM:   0x04,

	OP_JUMP_TO: 0x10,
	OP_JUMP_Z:  0x11,
	OP_JUMP_NZ: 0x12,

	OP_XOR: 0x20,
	OP_ADD: 0x21,
	OP_SUB: 0x22,
	OP_MUL: 0x23,
	OP_DIV: 0x24,
	OP_INC: 0x25,
	OP_DEC: 0x26,
	OP_AND: 0x27,
	OP_OR:  0x28,

	OP_STRING_STORE:  0x30,
	OP_STRING_PRINT:  0x31,
	OP_STRING_CONCAT: 0x32,
	OP_STRING_SYSTEM: 0x33,
	OP_STRING_TOINT:  0x34,

	OP_CMP_REG:       0x40,
	OP_CMP_IMMEDIATE: 0x41,
	OP_CMP_STRING:    0x42, // formerly aliased OP_SUB at 0x22
	OP_IS_STRING:     0x43,
	OP_IS_INTEGER:    0x44,

	OP_NOP:       0x50,
	OP_REG_STORE: 0x51,

	OP_PEEK:   0x60,
	OP_POKE:   0x61,
	OP_MEMCPY: 0x62,

	OP_STACK_PUSH: 0x70,
	OP_STACK_POP:  0x71,
	OP_STACK_RET:  0x72,
	OP_STACK_CALL: 0x73, // formerly aliased OP_MUL at 0x23

	OP_TRAP: 0x80,
}

// Table is a validated bijection between operations and instruction codes.
type Table struct {
	encode [OP_COUNT]Code
	decode map[Code]Op
}

// defaultTable is built once, before any caller can observe it.
var defaultTable = mustTable(codes)

func mustTable(assign map[Op]Code) *Table {
	table, err := NewTable(assign)
	if err != nil {
		panic(err)
	}
	return table
}

// NewTable validates an operation to code assignment and builds a Table.
// Every declared Op must have a code, and no two ops may share one.
func NewTable(assign map[Op]Code) (table *Table, err error) {
	table = &Table{
		decode: make(map[Code]Op, len(assign)),
	}

	for op := range assign {
		if !op.Valid() {
			err = ErrOpInvalid(op)
			return nil, err
		}
	}

	for n := range OP_COUNT {
		op := Op(n)
		code, ok := assign[op]
		if !ok {
			err = ErrOpMissing(op)
			return nil, err
		}
		other, dup := table.decode[code]
		if dup {
			err = &ErrCodeDuplicate{Code: code, First: other, Second: op}
			return nil, err
		}
		table.encode[op] = code
		table.decode[code] = op
	}

	return
}

// Encode returns the instruction code of an operation.
func (table *Table) Encode(op Op) (code Code, err error) {
	if !op.Valid() {
		err = ErrOpInvalid(op)
		return
	}

	code = table.encode[op]
	return
}

// Decode returns the operation of an instruction code.
// ok is false for any byte not assigned to an operation.
func (table *Table) Decode(code Code) (op Op, ok bool) {
	op, ok = table.decode[code]
	return
}

// All iterates over every operation and its code, in enumeration order.
func (table *Table) All() iter.Seq2[Op, Code] {
	return func(yield func(op Op, code Code) bool) {
		for n, code := range table.encode {
			if !yield(Op(n), code) {
				return
			}
		}
	}
}

// Codes returns every assigned instruction code in ascending order.
func (table *Table) Codes() (list []Code) {
	list = make([]Code, 0, len(table.decode))
	for _, code := range table.All() {
		list = append(list, code)
	}
	slices.Sort(list)
	return
}

// Default returns the validated process-wide table.
func Default() *Table {
	return defaultTable
}

// Encode returns the instruction code of an operation, using the default table.
func Encode(op Op) (Code, error) {
	return defaultTable.Encode(op)
}

// Decode returns the operation of an instruction code, using the default table.
func Decode(code Code) (Op, bool) {
	return defaultTable.Decode(code)
}
