package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Memory geometry. Both stores are externally owned; the core only drives
// address, data and enable lines sized to these widths.
const (
	STORE_SIZE = 4096 // Instruction store entries (12-bit address).
	STORE_MASK = STORE_SIZE - 1

	TAPE_SIZE = 1024 // Data tape entries (10-bit address).
	TAPE_MASK = TAPE_SIZE - 1
)

var _cpu_defines = map[string]string{
	"STORE_SIZE": fmt.Sprintf("%v", STORE_SIZE),
	"TAPE_SIZE":  fmt.Sprintf("%v", TAPE_SIZE),
}

// Opcode is a single instruction byte. The recognized set is the eight
// classic tape operators plus 0x00 for halt; every other byte value decodes
// as a comment and executes as a one-cycle no-op.
type Opcode byte

const (
	OP_HALT  = Opcode(0x00) // enter the absorbing halt state
	OP_RIGHT = Opcode('>')  // data pointer + 1
	OP_LEFT  = Opcode('<')  // data pointer - 1
	OP_INC   = Opcode('+')  // current cell + 1
	OP_DEC   = Opcode('-')  // current cell - 1
	OP_OPEN  = Opcode('[')  // enter loop body, or scan to the next ']'
	OP_CLOSE = Opcode(']')  // repeat loop body, or fall through
	OP_OUT   = Opcode('.')  // emit current cell on the output port
	OP_IN    = Opcode(',')  // store a byte from the input port
)

// Recognized returns true for the nine opcode bytes with assigned behavior.
func (op Opcode) Recognized() bool {
	switch op {
	case OP_HALT, OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OPEN, OP_CLOSE, OP_OUT, OP_IN:
		return true
	}
	return false
}

// String returns the operator character, or a hex rendering for halt and
// comment bytes.
func (op Opcode) String() string {
	switch op {
	case OP_HALT:
		return "halt"
	case OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OPEN, OP_CLOSE, OP_OUT, OP_IN:
		return string(byte(op))
	}
	return fmt.Sprintf("0x%02x", byte(op))
}

// Defines for the cpu.
func (c *Core) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
