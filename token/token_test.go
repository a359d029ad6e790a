package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("illegal", KIND_ILLEGAL.String())
	assert.Equal("identifier", KIND_IDENT.String())
	assert.Equal(",", KIND_COMMA.String())
	assert.Equal("jmpnz", KIND_JMPNZ.String())
	assert.Equal("Kind(42)", Kind(42).String())
}

func TestKind_IsKeyword(t *testing.T) {
	assert := assert.New(t)

	for kind := KIND_ILLEGAL; kind <= KIND_COMMA; kind++ {
		assert.False(kind.IsKeyword(), "%v", kind)
		assert.True(kind.Valid())
	}
	for kind := KIND_ADD; kind <= KIND_TRAP; kind++ {
		assert.True(kind.IsKeyword(), "%v", kind)
		assert.True(kind.Valid())
	}
	assert.False(Kind(-1).IsKeyword())
	assert.False(Kind(42).IsKeyword())
	assert.False(Kind(42).Valid())
}

func TestKind_Family(t *testing.T) {
	assert := assert.New(t)

	expected := map[Kind]Family{
		KIND_ILLEGAL:    FAMILY_STRUCTURAL,
		KIND_COMMA:      FAMILY_STRUCTURAL,
		KIND_ADD:        FAMILY_MATH,
		KIND_XOR:        FAMILY_MATH,
		KIND_CALL:       FAMILY_CONTROL,
		KIND_RET:        FAMILY_CONTROL,
		KIND_POP:        FAMILY_STACK,
		KIND_INT2STRING: FAMILY_TYPES,
		KIND_CMP:        FAMILY_COMPARE,
		KIND_STORE:      FAMILY_STORE,
		KIND_PRINT_STR:  FAMILY_PRINT,
		KIND_POKE:       FAMILY_MEMORY,
		KIND_CONCAT:     FAMILY_MISC,
		KIND_TRAP:       FAMILY_MISC,
		Kind(99):        FAMILY_STRUCTURAL,
	}

	for kind, family := range expected {
		assert.Equal(family, kind.Family(), "%v", kind)
	}
	assert.Equal("misc", KIND_DB.Family().String())
}

func TestToken(t *testing.T) {
	assert := assert.New(t)

	tok := New(KIND_LABEL, "loop")
	assert.Equal(Token{Kind: KIND_LABEL, Literal: "loop"}, tok)
	assert.Equal(`label "loop"`, tok.String())
}
