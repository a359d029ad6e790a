// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package token

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/vmasm/internal"
)

// families holds the reserved words of the language, grouped by family.
var families = map[Family]map[string]Kind{
	FAMILY_MATH: {
		"add": KIND_ADD,
		"and": KIND_AND,
		"dec": KIND_DEC,
		"div": KIND_DIV,
		"inc": KIND_INC,
		"mul": KIND_MUL,
		"or":  KIND_OR,
		"sub": KIND_SUB,
		"xor": KIND_XOR,
	},
	FAMILY_CONTROL: {
		"call":  KIND_CALL,
		"jmp":   KIND_JMP,
		"jmpnz": KIND_JMPNZ,
		"jmpz":  KIND_JMPZ,
		"ret":   KIND_RET,
	},
	FAMILY_STACK: {
		"push": KIND_PUSH,
		"pop":  KIND_POP,
	},
	FAMILY_TYPES: {
		"is_integer": KIND_IS_INTEGER,
		"is_string":  KIND_IS_STRING,
		"int2string": KIND_INT2STRING,
		"string2int": KIND_STRING2INT,
	},
	FAMILY_COMPARE: {
		"cmp": KIND_CMP,
	},
	FAMILY_STORE: {
		"store": KIND_STORE,
	},
	FAMILY_PRINT: {
		"print_int": KIND_PRINT_INT,
		"print_str": KIND_PRINT_STR,
	},
	FAMILY_MEMORY: {
		"peek": KIND_PEEK,
		"poke": KIND_POKE,
	},
	FAMILY_MISC: {
		"exit":   KIND_EXIT,
		"concat": KIND_CONCAT,
		"data":   KIND_DATA,
		"db":     KIND_DB,
		"trap":   KIND_TRAP,
		"memcpy": KIND_MEMCPY,
		"nop":    KIND_NOP,
		"random": KIND_RANDOM,
		"system": KIND_SYSTEM,
	},
}

// keywords is the flattened keyword table, read-only once built.
var keywords = mustKeywords(families)

func mustKeywords(groups map[Family]map[string]Kind) map[string]Kind {
	table, err := buildKeywords(groups)
	if err != nil {
		panic(err)
	}
	return table
}

// buildKeywords flattens and validates the grouped keyword table.
// Every keyword kind must be spelled exactly once, in lowercase, and
// filed under its own family.
func buildKeywords(groups map[Family]map[string]Kind) (table map[string]Kind, err error) {
	table = make(map[string]Kind, int(KIND_TRAP-KIND_ADD)+1)
	spelling := make(map[Kind]string, len(table))

	for _, family := range slices.Sorted(maps.Keys(groups)) {
		for _, word := range slices.Sorted(maps.Keys(groups[family])) {
			kind := groups[family][word]
			if !kind.IsKeyword() || kind.Family() != family || word != strings.ToLower(word) {
				err = &ErrKeywordKind{Word: word, Kind: kind}
				return nil, err
			}
			if other, dup := spelling[kind]; dup {
				err = &ErrKeywordDuplicate{Kind: kind, First: other, Second: word}
				return nil, err
			}
			spelling[kind] = word
			table[word] = kind
		}
	}

	for kind := KIND_ADD; kind <= KIND_TRAP; kind++ {
		if _, ok := spelling[kind]; !ok {
			err = ErrKeywordMissing(kind)
			return nil, err
		}
	}

	return
}

// Lookup classifies an identifier. Reserved words return their keyword
// kind; anything else is a user symbol and returns KIND_IDENT.
// Matching is case sensitive.
func Lookup(ident string) Kind {
	return internal.FindOrDefault(keywords, ident, KIND_IDENT)
}

// Keywords iterates over every reserved word and its kind, family by family.
func Keywords() iter.Seq2[string, Kind] {
	var seqs []iter.Seq2[string, Kind]
	for _, family := range slices.Sorted(maps.Keys(families)) {
		group := families[family]
		seqs = append(seqs, func(yield func(string, Kind) bool) {
			for _, word := range slices.Sorted(maps.Keys(group)) {
				if !yield(word, group[word]) {
					return
				}
			}
		})
	}

	return internal.IterSeq2Concat(seqs...)
}
