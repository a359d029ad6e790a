package lexer

import (
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

var (
	ErrNotInteger = translate.Error("not an integer")
	ErrOverflow   = translate.Error("integer overflow")
)

// ErrExpression is a $( expr ) expression that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
