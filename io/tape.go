package io

import (
	"github.com/ezrec/ubrain/cpu"
)

// Tape is the data tape: a read/write byte array behind a 10-bit address bus
// with the same enable-then-capture protocol as the instruction store, plus
// a write select line.
type Tape struct {
	Data [cpu.TAPE_SIZE]byte

	data byte // Registered read output.
}

// Reset zeroes the tape and the read register.
func (tp *Tape) Reset() {
	clear(tp.Data[:])
	tp.data = 0
}

// Tick services one cycle of the memory port. A write commits data at addr
// when both enable and write are asserted; a read captures the addressed
// byte into the read register. The return value is what the core sees on
// its tape data pins next cycle.
func (tp *Tape) Tick(addr uint16, data byte, enable, write bool) byte {
	if enable {
		if write {
			tp.Data[addr&cpu.TAPE_MASK] = data
		} else {
			tp.data = tp.Data[addr&cpu.TAPE_MASK]
		}
	}
	return tp.data
}
