package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := LoadProgram(strings.NewReader("++[->+<]."))
	assert.NoError(err)
	assert.Equal([]byte("++[->+<]."), prog.Image)
	assert.Equal(0, prog.LineAt(0), "raw programs carry no line map")
}

func TestLoadProgramTooBig(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadProgram(bytes.NewReader(bytes.Repeat([]byte{'+'}, STORE_SIZE+1)))
	assert.ErrorIs(err, ErrProgramTooBig)

	prog, err := LoadProgram(bytes.NewReader(bytes.Repeat([]byte{'+'}, STORE_SIZE)))
	assert.NoError(err)
	assert.Len(prog.Image, STORE_SIZE)
}

func TestProgramLineAt(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.NoError(prog.add(OP_INC, 2, 1))
	assert.NoError(prog.add(OP_OUT, 1, 3))

	assert.Equal(1, prog.LineAt(0))
	assert.Equal(1, prog.LineAt(1))
	assert.Equal(3, prog.LineAt(2))
	assert.Equal(0, prog.LineAt(3))
}
