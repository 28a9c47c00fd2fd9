package io

import (
	"io"
)

// InPort models the input device handshake. The core holds its request line
// asserted until valid is observed; the byte presented alongside valid is
// consumed exactly once, when the request line drops. A nil or exhausted
// Input never raises valid, which stalls the core forever — there is no
// timeout on either side.
type InPort struct {
	Input io.Reader
	Delay int // Extra ticks between request and valid, to model a slow device.

	wait  int
	data  byte
	valid bool

	Count int // Bytes consumed.
}

// Reset drops any pending byte. The Input reader keeps its position.
func (ip *InPort) Reset() {
	ip.wait = 0
	ip.data = 0
	ip.valid = false
	ip.Count = 0
}

// Tick services one cycle of the handshake. While request is asserted the
// port fetches one byte from Input (after Delay ticks) and holds it valid;
// when request drops the byte is consumed.
func (ip *InPort) Tick(request bool) (data byte, valid bool) {
	if !request {
		if ip.valid {
			ip.valid = false
			ip.Count++
		}
		ip.wait = 0
		return 0, false
	}

	if ip.valid {
		return ip.data, true
	}

	if ip.wait < ip.Delay {
		ip.wait++
		return 0, false
	}

	if ip.Input == nil {
		return 0, false
	}
	var one [1]byte
	n, err := ip.Input.Read(one[:])
	if err != nil || n == 0 {
		// Device never becomes ready.
		return 0, false
	}

	ip.data = one[0]
	ip.valid = true
	ip.wait = 0
	return ip.data, true
}

// OutPort models the output device handshake. A write strobe is only honored
// when the device is not busy; the core retries by holding its strobe until
// busy deasserts. Hold makes the device report busy for that many ticks
// after each accepted byte.
type OutPort struct {
	Output io.Writer
	Hold   int // Busy ticks after each accepted byte.

	busy int

	Count int // Bytes accepted.
	Last  byte
}

// Reset makes the device immediately ready.
func (op *OutPort) Reset() {
	op.busy = 0
	op.Count = 0
	op.Last = 0
}

// Tick services one cycle of the handshake and returns the busy line the
// core samples next cycle. A strobe during a busy tick is ignored.
func (op *OutPort) Tick(data byte, write bool) (busy bool, err error) {
	if op.busy > 0 {
		op.busy--
		return op.busy > 0, nil
	}

	if write {
		if op.Output != nil {
			_, err = op.Output.Write([]byte{data})
		}
		op.Last = data
		op.Count++
		op.busy = op.Hold
	}

	return op.busy > 0, err
}
