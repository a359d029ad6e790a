package token

import (
	"errors"
	"maps"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// spellings is the concrete syntax of every reserved word.
var spellings = map[string]Kind{
	"add": KIND_ADD, "and": KIND_AND, "dec": KIND_DEC, "div": KIND_DIV,
	"inc": KIND_INC, "mul": KIND_MUL, "or": KIND_OR, "sub": KIND_SUB,
	"xor": KIND_XOR, "call": KIND_CALL, "jmp": KIND_JMP, "jmpnz": KIND_JMPNZ,
	"jmpz": KIND_JMPZ, "ret": KIND_RET, "push": KIND_PUSH, "pop": KIND_POP,
	"is_integer": KIND_IS_INTEGER, "is_string": KIND_IS_STRING,
	"int2string": KIND_INT2STRING, "string2int": KIND_STRING2INT,
	"cmp": KIND_CMP, "store": KIND_STORE, "print_int": KIND_PRINT_INT,
	"print_str": KIND_PRINT_STR, "peek": KIND_PEEK, "poke": KIND_POKE,
	"exit": KIND_EXIT, "concat": KIND_CONCAT, "data": KIND_DATA, "db": KIND_DB,
	"trap": KIND_TRAP, "memcpy": KIND_MEMCPY, "nop": KIND_NOP,
	"random": KIND_RANDOM, "system": KIND_SYSTEM,
}

func TestLookup_Keywords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(35, len(spellings))
	for word, kind := range spellings {
		assert.Equal(kind, Lookup(word), "keyword %v", word)
		assert.Equal(word, kind.String())
	}
}

func TestLookup_Identifier(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KIND_IDENT, Lookup("myLabel123"))
	assert.Equal(KIND_IDENT, Lookup(""))
	assert.Equal(KIND_IDENT, Lookup("#1"))
	assert.Equal(KIND_IDENT, Lookup("jmpnzz"))
	assert.Equal(KIND_IDENT, Lookup(" jmp"))

	// Structural kind names are not reserved words.
	assert.Equal(KIND_IDENT, Lookup("label"))
	assert.Equal(KIND_IDENT, Lookup("illegal"))
	assert.Equal(KIND_IDENT, Lookup(","))
}

func TestLookup_CaseSensitive(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KIND_JMPNZ, Lookup("jmpnz"))
	assert.Equal(KIND_IDENT, Lookup("JMPNZ"))
	assert.Equal(KIND_IDENT, Lookup("Jmpnz"))

	for word := range spellings {
		assert.Equal(KIND_IDENT, Lookup(strings.ToUpper(word)), "keyword %v", word)
	}
}

func TestKeywords(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]Kind{}
	last := FAMILY_STRUCTURAL
	for word, kind := range Keywords() {
		_, dup := seen[word]
		assert.False(dup, "keyword %v", word)
		seen[word] = kind

		assert.GreaterOrEqual(kind.Family(), last)
		last = kind.Family()
	}

	assert.Equal(spellings, seen)

	count := 0
	for range Keywords() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

func TestBuildKeywords(t *testing.T) {
	assert := assert.New(t)

	table, err := buildKeywords(families)
	assert.NoError(err)
	assert.Equal(spellings, table)
}

func cloneFamilies() map[Family]map[string]Kind {
	groups := make(map[Family]map[string]Kind, len(families))
	for family, group := range families {
		groups[family] = maps.Clone(group)
	}
	return groups
}

func TestBuildKeywords_Duplicate(t *testing.T) {
	assert := assert.New(t)

	groups := cloneFamilies()
	groups[FAMILY_CONTROL]["jnz"] = KIND_JMPNZ

	_, err := buildKeywords(groups)
	var dup *ErrKeywordDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal(KIND_JMPNZ, dup.Kind)
}

func TestBuildKeywords_Missing(t *testing.T) {
	assert := assert.New(t)

	groups := cloneFamilies()
	delete(groups[FAMILY_MISC], "nop")

	_, err := buildKeywords(groups)
	assert.Equal(ErrKeywordMissing(KIND_NOP), err)
	assert.Contains(err.Error(), "nop")
}

func TestBuildKeywords_BadKind(t *testing.T) {
	assert := assert.New(t)

	groups := cloneFamilies()
	groups[FAMILY_MATH]["Mod"] = KIND_IDENT
	_, err := buildKeywords(groups)
	var bad *ErrKeywordKind
	assert.True(errors.As(err, &bad))

	groups = cloneFamilies()
	delete(groups[FAMILY_MATH], "add")
	groups[FAMILY_MISC]["add"] = KIND_ADD
	_, err = buildKeywords(groups)
	assert.True(errors.As(err, &bad))
	assert.Equal("add", bad.Word)

	groups = cloneFamilies()
	delete(groups[FAMILY_MATH], "add")
	groups[FAMILY_MATH]["ADD"] = KIND_ADD
	_, err = buildKeywords(groups)
	assert.True(errors.As(err, &bad))
	assert.Equal("ADD", bad.Word)
}

func TestLookup_Concurrent(t *testing.T) {
	assert := assert.New(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for word, kind := range spellings {
				assert.Equal(kind, Lookup(word))
				assert.Equal(KIND_IDENT, Lookup(strings.ToUpper(word)))
			}
			for word, kind := range Keywords() {
				assert.Equal(kind, Lookup(word))
			}
		}()
	}
	wg.Wait()
}

func FuzzLookup(f *testing.F) {
	for _, word := range []string{"jmpnz", "JMPNZ", "myLabel123", "", "print_str", "#3"} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word string) {
		assert := assert.New(t)

		kind := Lookup(word)
		assert.Equal(kind, Lookup(word))

		want, reserved := spellings[word]
		if reserved {
			assert.Equal(want, kind)
		} else {
			assert.Equal(KIND_IDENT, kind)
		}
	})
}
