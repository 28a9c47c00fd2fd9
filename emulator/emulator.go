// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator wires the μBrain core to its instruction store, data
// tape, and handshake ports, and drives the clock. Each Tick applies the
// core's pin outputs to the devices and latches their responses as the next
// cycle's pin inputs, so the memories keep their one-tick read latency and
// the ports keep their busy/valid handshakes.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ubrain/cpu"
	"github.com/ezrec/ubrain/internal"
	"github.com/ezrec/ubrain/io"
)

var _emulator_defines = map[string]string{
	"INPUT_DELAY": fmt.Sprintf("%v", 0),
	"OUTPUT_HOLD": fmt.Sprintf("%v", 0),
}

// Emulator state. Core + memories + ports.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	*cpu.Core              // Reference to the core simulation.
	Program   *cpu.Program // Currently loaded program listing.

	Store io.Store   // Instruction store.
	Tape  io.Tape    // Data tape.
	In    io.InPort  // Input device handshake.
	Out   io.OutPort // Output device handshake.

	in cpu.Inputs // Pin inputs latched for the next tick.
}

// NewEmulator creates a new emulator with empty memories.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Core:    cpu.NewCore(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Core.Defines(),
	)
}

// Reset loads the current program into the instruction store and returns
// the whole machine to its initial state. The data tape is zeroed; reset is
// the only recovery mechanism the processor has.
func (emu *Emulator) Reset() {
	emu.Core.Verbose = emu.Verbose

	emu.Store.LoadProgram(emu.Program)
	emu.Store.Reset()
	emu.Tape.Reset()
	emu.In.Reset()
	emu.Out.Reset()

	emu.Core.Reset()
	emu.in = cpu.Inputs{}
}

// LineNo returns the source line of the instruction the core is about to
// execute, or 0 when the program carries no line map.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineAt(emu.Core.PC.Address())
}

// Tick advances the machine by one clock cycle and reports the core's
// status. The only error source is the output device's writer; the core
// itself has no error path.
func (emu *Emulator) Tick() (status cpu.Status, err error) {
	out := emu.Core.Tick(emu.in)

	emu.in.Instr = emu.Store.Tick(out.InstrAddr, out.InstrEnable)
	emu.in.Cell = emu.Tape.Tick(out.TapeAddr, out.TapeData, out.TapeEnable, out.TapeWrite)
	emu.in.In, emu.in.InValid = emu.In.Tick(out.InRequest)
	emu.in.OutBusy, err = emu.Out.Tick(out.OutData, out.OutWrite)
	if err != nil {
		err = &ErrRuntime{Tick: emu.Core.Ticks, LineNo: emu.LineNo(), Err: err}
		return
	}

	status = emu.Core.Status()
	return
}

// Run ticks until the core halts. A limit of zero runs forever: a stalled
// handshake or a non-terminating program never returns, exactly as the
// hardware would spin. A positive limit returns ErrTickLimit once exceeded.
func (emu *Emulator) Run(limit int) (status cpu.Status, err error) {
	for {
		status, err = emu.Tick()
		if err != nil || status == cpu.Halted {
			return
		}
		if limit > 0 && emu.Core.Ticks >= limit {
			err = &ErrRuntime{Tick: emu.Core.Ticks, LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
	}
}
