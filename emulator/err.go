package emulator

import (
	"errors"

	"github.com/ezrec/ubrain/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime locates a runtime error on the tick and source line it
// happened at.
type ErrRuntime struct {
	Tick   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d line %d %v", err.Tick, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
