package token

import (
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

// ErrKeywordKind is a keyword bound to a kind it cannot spell.
type ErrKeywordKind struct {
	Word string
	Kind Kind
}

func (err *ErrKeywordKind) Error() string {
	return f("keyword '%v' cannot spell %v", err.Word, err.Kind.String())
}

// ErrKeywordDuplicate is a keyword kind with more than one spelling.
type ErrKeywordDuplicate struct {
	Kind   Kind
	First  string
	Second string
}

func (err *ErrKeywordDuplicate) Error() string {
	return f("%v spelled both '%v' and '%v'", err.Kind.String(), err.First, err.Second)
}

// ErrKeywordMissing is a keyword kind without a spelling.
type ErrKeywordMissing Kind

func (err ErrKeywordMissing) Error() string {
	return f("%v has no keyword", Kind(err).String())
}
