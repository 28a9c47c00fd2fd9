package cpu

import (
	"fmt"
	"log"
)

// State is one control-unit state. All outputs are a pure function of the
// present state plus the sampled inputs; the per-opcode sequences below are
// entered from StateDecode and all return to StateFetch, except for the
// absorbing StateHalt.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	StateStart  = State(iota) // start
	StateFetch                // fetch
	StateDecode               // decode

	StateMoveRight // right
	StateMoveLeft  // left
	StateSkip      // skip

	StateIncRead  // inc.read
	StateIncLoad  // inc.load
	StateIncWrite // inc.write

	StateDecRead  // dec.read
	StateDecLoad  // dec.load
	StateDecWrite // dec.write

	StateLoopRead  // loop.read
	StateLoopTest  // loop.test
	StateScanFetch // scan.fetch
	StateScanTest  // scan.test
	StateBackTest  // back.test

	StateOutRead // out.read
	StateOutLoad // out.load
	StateOutWait // out.wait

	StateInWait  // in.wait
	StateInWrite // in.write

	StateHalt // halt
)

// Status classifies a state for external drivers. The pins expose no halt
// or wait signal; this is a driver convenience derived from the state
// register.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	Running        = Status(iota) // running
	AwaitingInput                 // awaiting-input
	AwaitingOutput                // awaiting-output
	Halted                        // halted
)

// Inputs are the pin-level input lines sampled by one tick. Memory read data
// becomes valid one tick after the corresponding enable was asserted.
type Inputs struct {
	Instr   byte // Instruction store read data.
	Cell    byte // Data tape read data.
	In      byte // Input port data.
	InValid bool // Input port data is valid.
	OutBusy bool // Output port cannot accept a write.
}

// Outputs are the pin-level output lines driven during one tick. The address
// lines are always driven from the program counter and data pointer; the
// enables select which interfaces act on them.
type Outputs struct {
	InstrAddr   uint16 // Instruction store address.
	InstrEnable bool   // Instruction store read enable.

	TapeAddr   uint16 // Data tape address.
	TapeData   byte   // Data tape write data.
	TapeEnable bool   // Data tape enable.
	TapeWrite  bool   // Data tape write select (read when false).

	OutData  byte // Output port data.
	OutWrite bool // Output port write strobe.

	InRequest bool // Input port request.
}

// Core is the processor: the control unit state machine and the register
// file it drives. It owns no memory; the instruction store, data tape and
// both ports live behind the Inputs/Outputs pins.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	PC    ProgramCounter // Instruction store address register.
	DP    DataPointer    // Data tape address register.
	Cache LoopCache      // Loop-body start address, single slot.
	Alu   AluSelect      // Registered tape write-back value.

	// cell tracks the processor's latest knowledge of the addressed cell:
	// the value read by '[' and '.', or the value computed for write-back
	// by '+', '-' and ','. The ']' zero test uses it without re-reading
	// the tape.
	cell byte

	state State
	Ticks int // Ticks since reset.
}

// NewCore creates a core in its reset state.
func NewCore() (c *Core) {
	c = &Core{}
	c.Reset()
	return
}

// State returns the present control state.
func (c *Core) State() State {
	return c.state
}

// Status reports whether the core is running, stalled on a handshake, or
// halted.
func (c *Core) Status() Status {
	switch c.state {
	case StateInWait:
		return AwaitingInput
	case StateOutWait:
		return AwaitingOutput
	case StateHalt:
		return Halted
	}
	return Running
}

// Reset returns the core to its initial state: program counter and data
// pointer to zero, write-back register cleared, control state to start.
// The loop cache is not cleared; it has no defined value until the first
// capture. In the original hardware the PC and pointer resets are
// asynchronous while the state register's is clocked; here both collapse
// into this one operation.
func (c *Core) Reset() {
	if c.Verbose {
		log.Printf("cpu: reset")
	}

	c.PC.Reset()
	c.DP.Reset()
	c.Alu.Reset()
	c.cell = 0
	c.state = StateStart
	c.Ticks = 0
}

// String returns the current core state as a string.
func (c *Core) String() string {
	return fmt.Sprintf("%v pc=%03x dp=%03x cache=%03x cell=%02x",
		c.state, c.PC.Address(), c.DP.Address(), c.Cache.Address(), c.cell)
}

// outputs derives the pin outputs for the present state. The address lines
// follow the registers unconditionally; only the enables and strobes are
// state dependent.
func (c *Core) outputs() (out Outputs) {
	out.InstrAddr = c.PC.Address()
	out.TapeAddr = c.DP.Address()

	switch c.state {
	case StateFetch, StateScanFetch:
		out.InstrEnable = true
	case StateIncRead, StateDecRead, StateLoopRead, StateOutRead:
		out.TapeEnable = true
	case StateIncWrite, StateDecWrite, StateInWrite:
		out.TapeEnable = true
		out.TapeWrite = true
		out.TapeData = c.Alu.Data()
	case StateOutWait:
		// Held across ticks while the device is busy; the device only
		// honors the strobe once busy deasserts.
		out.OutWrite = true
		out.OutData = c.cell
	case StateInWait:
		out.InRequest = true
	}

	return
}

// Tick executes one clock cycle: it drives the outputs for the present
// state from the sampled inputs, then commits the register updates and the
// state transition. There is no error path; unrecognized opcodes skip,
// arithmetic wraps, and an unmet handshake holds its state forever.
func (c *Core) Tick(in Inputs) (out Outputs) {
	out = c.outputs()

	if c.Verbose {
		log.Printf("cpu: %v", c)
	}

	switch c.state {
	case StateStart:
		c.state = StateFetch

	case StateFetch:
		c.state = StateDecode

	case StateDecode:
		c.state = c.decode(Opcode(in.Instr))

	case StateMoveRight:
		c.DP.Increment()
		c.PC.Increment()
		c.state = StateFetch

	case StateMoveLeft:
		c.DP.Decrement()
		c.PC.Increment()
		c.state = StateFetch

	case StateSkip:
		// Comment byte.
		c.PC.Increment()
		c.state = StateFetch

	case StateIncRead:
		c.PC.Increment()
		c.state = StateIncLoad

	case StateIncLoad:
		c.Alu.SelectInc(in.Cell)
		c.cell = c.Alu.Data()
		c.state = StateIncWrite

	case StateIncWrite:
		c.state = StateFetch

	case StateDecRead:
		c.PC.Increment()
		c.state = StateDecLoad

	case StateDecLoad:
		c.Alu.SelectDec(in.Cell)
		c.cell = c.Alu.Data()
		c.state = StateDecWrite

	case StateDecWrite:
		c.state = StateFetch

	case StateLoopRead:
		// Step past the bracket before the cell test; a capture then
		// records the loop-body start address.
		c.PC.Increment()
		c.state = StateLoopTest

	case StateLoopTest:
		c.cell = in.Cell
		if in.Cell != 0 {
			c.Cache.Capture(c.PC.Address())
			c.state = StateFetch
		} else {
			c.state = StateScanFetch
		}

	case StateScanFetch:
		c.state = StateScanTest

	case StateScanTest:
		// The scan does not count bracket depth; the first closing
		// bracket ends it, nested or not.
		c.PC.Increment()
		if Opcode(in.Instr) == OP_CLOSE {
			c.state = StateFetch
		} else {
			c.state = StateScanFetch
		}

	case StateBackTest:
		if c.cell != 0 {
			c.PC.Load(c.Cache.Address())
		} else {
			c.PC.Increment()
		}
		c.state = StateFetch

	case StateOutRead:
		c.state = StateOutLoad

	case StateOutLoad:
		c.cell = in.Cell
		c.state = StateOutWait

	case StateOutWait:
		if !in.OutBusy {
			c.PC.Increment()
			c.state = StateFetch
		}

	case StateInWait:
		if in.InValid {
			c.Alu.SelectInput(in.In)
			c.cell = c.Alu.Data()
			c.PC.Increment()
			c.state = StateInWrite
		}

	case StateInWrite:
		c.state = StateFetch

	case StateHalt:
		// Absorbing. Only a reset leaves this state.
	}

	c.Ticks++

	return
}

// decode selects the per-opcode sequence for a fetched instruction byte.
func (c *Core) decode(op Opcode) State {
	switch op {
	case OP_RIGHT:
		return StateMoveRight
	case OP_LEFT:
		return StateMoveLeft
	case OP_INC:
		return StateIncRead
	case OP_DEC:
		return StateDecRead
	case OP_OPEN:
		return StateLoopRead
	case OP_CLOSE:
		return StateBackTest
	case OP_OUT:
		return StateOutRead
	case OP_IN:
		return StateInWait
	case OP_HALT:
		return StateHalt
	}

	return StateSkip
}
