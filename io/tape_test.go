package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubrain/cpu"
)

func TestTapeReadWrite(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}

	// A write commits; a later read captures it one tick later.
	tp.Tick(9, 0x42, true, true)
	assert.Equal(byte(0x42), tp.Data[9])

	assert.Equal(byte(0x42), tp.Tick(9, 0, true, false))
	assert.Equal(byte(0x42), tp.Tick(3, 0, false, false), "held without enable")
	assert.Equal(byte(0), tp.Tick(3, 0, true, false))
}

func TestTapeWriteNeedsEnable(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Tick(0, 0x42, false, true)
	assert.Equal(byte(0), tp.Data[0], "write select without enable commits nothing")
}

func TestTapeAddressMask(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Tick(cpu.TAPE_SIZE+7, 0x11, true, true)
	assert.Equal(byte(0x11), tp.Data[7])
}

func TestTapeReset(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Tick(0, 0xff, true, true)
	tp.Reset()
	assert.Equal(byte(0), tp.Data[0])
}

func TestTapeDumpImage(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Data[0] = 'H'
	tp.Data[cpu.TAPE_SIZE-1] = '!'

	buf := &bytes.Buffer{}
	assert.NoError(tp.DumpImage(buf))
	assert.Equal(cpu.TAPE_SIZE, buf.Len())
	assert.Equal(byte('H'), buf.Bytes()[0])
	assert.Equal(byte('!'), buf.Bytes()[cpu.TAPE_SIZE-1])
}
