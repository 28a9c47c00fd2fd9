package io

import (
	"io"

	"github.com/ezrec/ubrain/cpu"
)

// LoadImage fills the instruction store from a memory image, zero filling
// the remainder. Zero fill means a program that runs past its image halts.
func (st *Store) LoadImage(r io.Reader) (n int, err error) {
	clear(st.Data[:])

	n, err = io.ReadFull(r, st.Data[:])
	switch err {
	case io.EOF, io.ErrUnexpectedEOF:
		err = nil
	case nil:
		// A full read with bytes left over does not fit.
		var one [1]byte
		var extra int
		extra, err = r.Read(one[:])
		if extra > 0 {
			err = ErrImageTooBig
			return
		}
		if err == io.EOF {
			err = nil
		}
	}

	return
}

// LoadProgram fills the instruction store from a program image.
func (st *Store) LoadProgram(prog *cpu.Program) {
	clear(st.Data[:])
	copy(st.Data[:], prog.Image)
}

// DumpImage writes the entire data tape as a flat image.
func (tp *Tape) DumpImage(w io.Writer) (err error) {
	_, err = w.Write(tp.Data[:])
	return
}
