package cpu

import (
	"io"
)

// Program is an instruction-store image together with the source lines it
// came from. Raw operator programs carry no line map; assembled programs map
// every image byte back to its listing line for diagnostics.
type Program struct {
	Source []string // Original listing lines, if assembled.
	Image  []byte   // Instruction-store image, at most STORE_SIZE bytes.
	Lines  []int    // Source line per image byte (1-based, 0 when unknown).
}

// LoadProgram reads a raw operator program. Every byte is a valid opcode
// (unrecognized bytes execute as comments), so the source is taken verbatim.
// The instruction store is zero filled past the image, so a program that
// runs off its own end halts.
func LoadProgram(r io.Reader) (prog *Program, err error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return
	}
	if len(image) > STORE_SIZE {
		err = ErrProgramTooBig
		return
	}

	prog = &Program{Image: image}
	return
}

// LineAt returns the 1-based source line for an instruction-store address,
// or 0 when the address has no known source.
func (prog *Program) LineAt(addr uint16) int {
	n := int(addr & STORE_MASK)
	if n >= len(prog.Lines) {
		return 0
	}
	return prog.Lines[n]
}

// add appends count copies of an opcode attributed to a source line.
func (prog *Program) add(op Opcode, count int, lineno int) error {
	for range count {
		if len(prog.Image) >= STORE_SIZE {
			return ErrProgramTooBig
		}
		prog.Image = append(prog.Image, byte(op))
		prog.Lines = append(prog.Lines, lineno)
	}
	return nil
}
