package opcode

import (
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

// ErrOpMissing is a declared operation without an instruction code.
type ErrOpMissing Op

func (err ErrOpMissing) Error() string {
	return f("operation %v has no instruction code", Op(err).String())
}

// ErrOpInvalid is an operation value outside of the declared enumeration.
type ErrOpInvalid Op

func (err ErrOpInvalid) Error() string {
	return f("operation %d is not declared", int(err))
}

// ErrCodeDuplicate is an instruction code assigned to two operations.
type ErrCodeDuplicate struct {
	Code   Code
	First  Op
	Second Op
}

func (err *ErrCodeDuplicate) Error() string {
	return f("instruction code %#02x assigned to both %v and %v", uint8(err.Code), err.First.String(), err.Second.String())
}
