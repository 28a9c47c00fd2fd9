package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubrain/cpu"
)

// doRun loads a raw operator program, binds the ports, and runs to halt.
func doRun(t *testing.T, program string, input []byte) (emu *Emulator, output *bytes.Buffer) {
	t.Helper()
	assert := assert.New(t)

	emu = NewEmulator()

	prog, err := cpu.LoadProgram(strings.NewReader(program))
	assert.NoError(err)
	emu.Program = prog

	output = &bytes.Buffer{}
	emu.In.Input = bytes.NewReader(input)
	emu.Out.Output = output

	emu.Reset()

	status, err := emu.Run(1000000)
	assert.NoError(err)
	assert.Equal(cpu.Halted, status)

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Core)
	assert.Equal(cpu.StateStart, emu.Core.State())
}

func TestEmulatorOutput(t *testing.T) {
	assert := assert.New(t)

	_, output := doRun(t, "++.", nil)
	assert.Equal([]byte{2}, output.Bytes())
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	_, output := doRun(t, ",.,.,.", []byte("abc"))
	assert.Equal("abc", output.String())
}

func TestEmulatorLoopCopy(t *testing.T) {
	assert := assert.New(t)

	// Read a byte, move it one cell right, then emit it from there. The
	// loop body ends on the decrement so the repeat test sees the counting
	// cell.
	emu, output := doRun(t, ",[>+<-]>.", []byte{5})
	assert.Equal([]byte{5}, output.Bytes())
	assert.Equal(byte(0), emu.Tape.Data[0])
	assert.Equal(byte(5), emu.Tape.Data[1])
}

func TestEmulatorCellWraps(t *testing.T) {
	assert := assert.New(t)

	// 255 increments then one more wraps the cell to zero.
	program := strings.Repeat("+", 256) + "."
	_, output := doRun(t, program, nil)
	assert.Equal([]byte{0}, output.Bytes())
}

func TestEmulatorAssembled(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	listing := strings.Join([]string{
		"; emit an uppercase H",
		".equ LETTER 72",
		"inc LETTER",
		"out",
		"halt",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(listing))
	assert.NoError(err)
	emu.Program = prog

	output := &bytes.Buffer{}
	emu.Out.Output = output

	emu.Reset()
	status, err := emu.Run(100000)
	assert.NoError(err)
	assert.Equal(cpu.Halted, status)
	assert.Equal("H", output.String())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("4096", defines["STORE_SIZE"])
	assert.Equal("1024", defines["TAPE_SIZE"])
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader("inc\nout\nhalt"))
	assert.NoError(err)
	emu.Program = prog
	emu.Out.Output = &bytes.Buffer{}

	emu.Reset()
	assert.Equal(1, emu.LineNo())

	status, err := emu.Run(100000)
	assert.NoError(err)
	assert.Equal(cpu.Halted, status)
	assert.Equal(3, emu.LineNo())
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// ',' with no input stalls forever; only the driver's limit returns.
	prog, err := cpu.LoadProgram(strings.NewReader(","))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()
	status, err := emu.Run(500)
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(cpu.AwaitingInput, emu.Core.Status())
	assert.NotEqual(cpu.Halted, status)

	var rte *ErrRuntime
	assert.ErrorAs(err, &rte)
	assert.GreaterOrEqual(rte.Tick, 500)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device wedged")
}

func TestEmulatorOutputError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	prog, err := cpu.LoadProgram(strings.NewReader("+."))
	assert.NoError(err)
	emu.Program = prog
	emu.Out.Output = failWriter{}

	emu.Reset()
	_, err = emu.Run(100000)
	assert.Error(err)

	var rte *ErrRuntime
	assert.ErrorAs(err, &rte)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu, _ := doRun(t, "+>+", nil)
	assert.Equal(byte(1), emu.Tape.Data[0])
	assert.Equal(byte(1), emu.Tape.Data[1])

	emu.Reset()
	assert.Equal(byte(0), emu.Tape.Data[0])
	assert.Equal(cpu.StateStart, emu.Core.State())
	assert.Equal(0, emu.Core.Ticks)
	assert.Equal(byte('+'), emu.Store.Data[0], "the program image survives a reset")
}
