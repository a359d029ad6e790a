package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for _, code := range []uint8{0x00, 0x22, 0x23, 0x42, 0x73, 0x80, 0xff} {
		f.Add(code)
	}

	f.Fuzz(func(t *testing.T, raw uint8) {
		assert := assert.New(t)

		code := Code(raw)
		op1, ok1 := Decode(code)
		op2, ok2 := Decode(code)
		assert.Equal(ok1, ok2)
		assert.Equal(op1, op2)
		assert.Equal(code.String(), code.String())

		if ok1 {
			back, err := Encode(op1)
			assert.NoError(err)
			assert.Equal(code, back)
		}
	})
}

func FuzzEncode(f *testing.F) {
	f.Add(0)
	f.Add(int(OP_TRAP))
	f.Add(-1)
	f.Add(1000)

	f.Fuzz(func(t *testing.T, n int) {
		assert := assert.New(t)

		op := Op(n)
		code1, err1 := Encode(op)
		code2, err2 := Encode(op)
		assert.Equal(code1, code2)
		assert.Equal(err1, err2)
		assert.Equal(op.Valid(), err1 == nil)
	})
}
