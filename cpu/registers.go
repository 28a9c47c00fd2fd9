package cpu

// ProgramCounter is the 12-bit address register for the instruction store.
// Exactly one operation is applied per tick by the control unit; Load has
// priority over Increment and Decrement.
type ProgramCounter struct {
	addr uint16
}

// Reset forces the counter to zero.
func (pc *ProgramCounter) Reset() {
	pc.addr = 0
}

// Address returns the current 12-bit address.
func (pc *ProgramCounter) Address() uint16 {
	return pc.addr
}

// Increment advances the counter, wrapping modulo the store size.
func (pc *ProgramCounter) Increment() {
	pc.addr = (pc.addr + 1) & STORE_MASK
}

// Decrement steps the counter back, wrapping modulo the store size.
// The control unit never selects this path; it exists to mirror the
// loop-return cache's unused release trigger.
func (pc *ProgramCounter) Decrement() {
	pc.addr = (pc.addr - 1) & STORE_MASK
}

// Load sets the counter to addr, masked to the store width.
func (pc *ProgramCounter) Load(addr uint16) {
	pc.addr = addr & STORE_MASK
}

// DataPointer is the 10-bit address register for the data tape.
type DataPointer struct {
	addr uint16
}

// Reset forces the pointer to zero.
func (dp *DataPointer) Reset() {
	dp.addr = 0
}

// Address returns the current 10-bit address.
func (dp *DataPointer) Address() uint16 {
	return dp.addr
}

// Increment advances the pointer, wrapping modulo the tape size.
func (dp *DataPointer) Increment() {
	dp.addr = (dp.addr + 1) & TAPE_MASK
}

// Decrement steps the pointer back, wrapping modulo the tape size.
func (dp *DataPointer) Decrement() {
	dp.addr = (dp.addr - 1) & TAPE_MASK
}

// LoopCache is the single-slot register holding the most recently captured
// loop-body start address. It has no defined value until the first capture,
// and a nested capture overwrites the enclosing loop's return address.
type LoopCache struct {
	addr uint16
}

// Address returns the cached loop-body start address.
func (lc *LoopCache) Address() uint16 {
	return lc.addr
}

// Capture stores the current program counter value. The control unit asserts
// this once, when an opening bracket is confirmed to execute its body.
func (lc *LoopCache) Capture(pc uint16) {
	lc.addr = pc & STORE_MASK
}

// Release stores the program counter minus one. This write trigger is never
// asserted by the current control logic; it is kept as the cache's alternate
// path, mutually exclusive with Capture.
func (lc *LoopCache) Release(pc uint16) {
	lc.addr = (pc - 1) & STORE_MASK
}

// AluSelect produces the byte written back to the data tape. The selection
// is combinational over three sources and the result is registered, so the
// value latched by one state is what a later write-back state commits.
type AluSelect struct {
	data byte
}

// Reset clears the write-back register.
func (alu *AluSelect) Reset() {
	alu.data = 0
}

// Data returns the registered write-back value.
func (alu *AluSelect) Data() byte {
	return alu.data
}

// SelectInput latches the externally supplied input byte.
func (alu *AluSelect) SelectInput(in byte) {
	alu.data = in
}

// SelectInc latches the current cell value plus one, modulo 256.
func (alu *AluSelect) SelectInc(cell byte) {
	alu.data = cell + 1
}

// SelectDec latches the current cell value minus one, modulo 256.
func (alu *AluSelect) SelectDec(cell byte) {
	alu.data = cell - 1
}
