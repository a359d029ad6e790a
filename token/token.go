// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token defines the lexical tokens of the assembly language, and
// classifies identifiers into reserved keywords.
package token

import (
	"fmt"
)

// Kind is the classification of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ILLEGAL = Kind(0) // illegal
	KIND_EOF     = Kind(1) // eof
	KIND_IDENT   = Kind(2) // identifier
	KIND_LABEL   = Kind(3) // label
	KIND_INT     = Kind(4) // int
	KIND_STRING  = Kind(5) // string
	KIND_COMMA   = Kind(6) // ,

	KIND_ADD = Kind(7)  // add
	KIND_AND = Kind(8)  // and
	KIND_DEC = Kind(9)  // dec
	KIND_DIV = Kind(10) // div
	KIND_INC = Kind(11) // inc
	KIND_MUL = Kind(12) // mul
	KIND_OR  = Kind(13) // or
	KIND_SUB = Kind(14) // sub
	KIND_XOR = Kind(15) // xor

	KIND_CALL  = Kind(16) // call
	KIND_JMP   = Kind(17) // jmp
	KIND_JMPNZ = Kind(18) // jmpnz
	KIND_JMPZ  = Kind(19) // jmpz
	KIND_RET   = Kind(20) // ret

	KIND_PUSH = Kind(21) // push
	KIND_POP  = Kind(22) // pop

	KIND_IS_STRING  = Kind(23) // is_string
	KIND_IS_INTEGER = Kind(24) // is_integer
	KIND_STRING2INT = Kind(25) // string2int
	KIND_INT2STRING = Kind(26) // int2string

	KIND_CMP = Kind(27) // cmp

	KIND_STORE = Kind(28) // store

	KIND_PRINT_INT = Kind(29) // print_int
	KIND_PRINT_STR = Kind(30) // print_str

	KIND_PEEK = Kind(31) // peek
	KIND_POKE = Kind(32) // poke

	KIND_CONCAT = Kind(33) // concat
	KIND_DATA   = Kind(34) // data
	KIND_DB     = Kind(35) // db
	KIND_EXIT   = Kind(36) // exit
	KIND_MEMCPY = Kind(37) // memcpy
	KIND_NOP    = Kind(38) // nop
	KIND_RANDOM = Kind(39) // random
	KIND_SYSTEM = Kind(40) // system
	KIND_TRAP   = Kind(41) // trap
)

// Family is a partition of the token kinds.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_STRUCTURAL = Family(0) // structural
	FAMILY_MATH       = Family(1) // math
	FAMILY_CONTROL    = Family(2) // control
	FAMILY_STACK      = Family(3) // stack
	FAMILY_TYPES      = Family(4) // types
	FAMILY_COMPARE    = Family(5) // compare
	FAMILY_STORE      = Family(6) // store
	FAMILY_PRINT      = Family(7) // print
	FAMILY_MEMORY     = Family(8) // memory
	FAMILY_MISC       = Family(9) // misc
)

// familyStart is the first kind of each family; families are contiguous.
var familyStart = [...]Kind{
	FAMILY_STRUCTURAL: KIND_ILLEGAL,
	FAMILY_MATH:       KIND_ADD,
	FAMILY_CONTROL:    KIND_CALL,
	FAMILY_STACK:      KIND_PUSH,
	FAMILY_TYPES:      KIND_IS_STRING,
	FAMILY_COMPARE:    KIND_CMP,
	FAMILY_STORE:      KIND_STORE,
	FAMILY_PRINT:      KIND_PRINT_INT,
	FAMILY_MEMORY:     KIND_PEEK,
	FAMILY_MISC:       KIND_CONCAT,
}

// Valid returns true if the Kind is part of the declared enumeration.
func (kind Kind) Valid() bool {
	return kind >= KIND_ILLEGAL && kind <= KIND_TRAP
}

// IsKeyword returns true if the kind is spelled by a reserved word.
func (kind Kind) IsKeyword() bool {
	return kind >= KIND_ADD && kind <= KIND_TRAP
}

// Family returns the family of the kind.
// Kinds outside the enumeration report FAMILY_STRUCTURAL.
func (kind Kind) Family() (family Family) {
	if !kind.IsKeyword() {
		return FAMILY_STRUCTURAL
	}

	for n, start := range familyStart {
		if kind >= start {
			family = Family(n)
		}
	}

	return
}

// Token is a classified lexical unit, and the exact source text it came from.
type Token struct {
	Kind    Kind
	Literal string
}

// New creates a token.
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

func (tok Token) String() string {
	return fmt.Sprintf("%v %q", tok.Kind.String(), tok.Literal)
}
