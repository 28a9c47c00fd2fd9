package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubrain/cpu"
)

func TestStoreReadLatency(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Data[5] = 0xa5
	st.Data[6] = 0x5a

	// Data appears on the read register only when enabled, and holds
	// until the next enabled read.
	assert.Equal(byte(0), st.Tick(5, false))
	assert.Equal(byte(0xa5), st.Tick(5, true))
	assert.Equal(byte(0xa5), st.Tick(6, false), "held without enable")
	assert.Equal(byte(0x5a), st.Tick(6, true))

	st.Reset()
	assert.Equal(byte(0), st.Tick(5, false))
	assert.Equal(byte(0xa5), st.Data[5], "reset keeps the store contents")
}

func TestStoreAddressMask(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Data[1] = 0x42

	assert.Equal(byte(0x42), st.Tick(cpu.STORE_SIZE+1, true))
}

func TestStoreLoadImage(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Data[100] = 0xff

	n, err := st.LoadImage(bytes.NewReader([]byte("+-[]")))
	assert.NoError(err)
	assert.Equal(4, n)
	assert.Equal(byte('+'), st.Data[0])
	assert.Equal(byte(0), st.Data[100], "image load zero fills the remainder")
}

func TestStoreLoadImageFull(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}

	n, err := st.LoadImage(bytes.NewReader(bytes.Repeat([]byte{'>'}, cpu.STORE_SIZE)))
	assert.NoError(err)
	assert.Equal(cpu.STORE_SIZE, n)

	_, err = st.LoadImage(bytes.NewReader(bytes.Repeat([]byte{'>'}, cpu.STORE_SIZE+1)))
	assert.ErrorIs(err, ErrImageTooBig)
}

func TestStoreLoadProgram(t *testing.T) {
	assert := assert.New(t)

	st := &Store{}
	st.Data[50] = 0x77

	prog := &cpu.Program{Image: []byte("++.")}
	st.LoadProgram(prog)

	assert.Equal(byte('+'), st.Data[0])
	assert.Equal(byte('.'), st.Data[2])
	assert.Equal(byte(0), st.Data[3], "zero fill past the image halts a runaway program")
	assert.Equal(byte(0), st.Data[50])
}
