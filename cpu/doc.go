// Package cpu implements the processor core and assembler for the μBrain system.
//
// The core is a control-unit finite state machine driving a small register
// file: a 12-bit program counter addressing the instruction store, a 10-bit
// data pointer addressing the data tape, a single-slot loop-return cache,
// and an ALU select stage that produces the byte written back to the tape.
// Each Tick consumes the pin-level inputs sampled for that cycle and emits
// the pin-level outputs, preserving the one-tick read latency of both
// memories and the busy/valid handshakes of the two I/O ports.
//
// The assembler provides a line-oriented mnemonic language for the eight
// operator instruction set, with equates, compile-time expression
// evaluation, and raw operator passthrough.
package cpu
