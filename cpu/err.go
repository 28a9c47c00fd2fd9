package cpu

import (
	"errors"

	"github.com/ezrec/ubrain/translate"
)

var f = translate.From

var (
	// Program errors
	ErrProgramTooBig = errors.New(f("program exceeds instruction store"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrTextSyntax      = errors.New(f(".text syntax"))
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrCountInvalid    = errors.New(f("repeat count invalid"))
	ErrExtraArgs       = errors.New(f("excessive arguments"))
	ErrEndWithoutLoop  = errors.New(f("end without loop"))
	ErrLoopWithoutEnd  = errors.New(f("loop without end"))
)

// ErrSyntax locates an assembler error on its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
