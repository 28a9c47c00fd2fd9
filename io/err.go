package io

import (
	"errors"

	"github.com/ezrec/ubrain/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooBig = errors.New(f("image exceeds instruction store"))
)
