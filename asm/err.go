package asm

import (
	"github.com/ezrec/ch8asm/translate"
)

var f = translate.From

// ErrSyntax locates an encoding error in the source. Line is the
// preprocessed text; Err already quotes it.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
