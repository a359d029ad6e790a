package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("opcode missing", From("opcode missing"))
	assert.Equal("line 3 'jmp' bad", From("line %d '%v' %v", 3, "jmp", "bad"))
}

func TestError(t *testing.T) {
	assert := assert.New(t)

	err := Error("keyword '%v' unknown", "jnz")
	assert.EqualError(err, "keyword 'jnz' unknown")
}
