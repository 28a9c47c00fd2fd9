// Package io provides the device models behind the μBrain core's pins: the
// instruction store, the data tape, and the two handshake ports. Each device
// exposes a Tick method that services the output lines the core drove during
// a cycle and returns the input lines the core samples on the next cycle,
// which preserves the one-tick read latency of the memory interfaces.
package io

import (
	"github.com/ezrec/ubrain/cpu"
)

// Store is the instruction store: a read-only byte array behind a 12-bit
// address bus with an enable-then-capture read protocol.
type Store struct {
	Data [cpu.STORE_SIZE]byte

	data byte // Registered read output.
}

// Reset clears the read register. The store contents are left alone; they
// belong to whatever loaded the program.
func (st *Store) Reset() {
	st.data = 0
}

// Tick services one cycle of the read port. When enable is asserted the
// addressed byte is captured into the read register; the return value is
// what the core sees on its instruction data pins next cycle.
func (st *Store) Tick(addr uint16, enable bool) byte {
	if enable {
		st.data = st.Data[addr&cpu.STORE_MASK]
	}
	return st.data
}
