package chip8

import (
	"errors"

	"github.com/ezrec/ch8asm/translate"
)

var f = translate.From

var (
	// Instruction encoding errors
	ErrUnknownOp   = errors.New(f("unknown operation"))
	ErrMissingArgs = errors.New(f("too few arguments"))
	ErrExtraArgs   = errors.New(f("too many arguments"))
	ErrInvalidArg  = errors.New(f("invalid argument"))
)

type ErrInvalidRegister string

func (err ErrInvalidRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrRawLiteral string

func (err ErrRawLiteral) Error() string {
	return f("'%v' is not a 16-bit hexadecimal word", string(err))
}

// ErrOutOfRange is returned when a numeric operand does not fit its field.
type ErrOutOfRange struct {
	Value uint16
	Max   uint16
}

func (err ErrOutOfRange) Error() string {
	return f("%#x exceeds %#x", err.Value, err.Max)
}

// ErrInstruction reports why a line could not be encoded. Err is one of the
// encoding sentinels, Cause the operand level error if there is one.
type ErrInstruction struct {
	Line  string
	Err   error
	Cause error
}

func (err *ErrInstruction) Error() string {
	if err.Cause != nil {
		return f("'%v' %v: %v", err.Line, err.Err, err.Cause)
	}
	return f("'%v' %v", err.Line, err.Err)
}

func (err *ErrInstruction) Unwrap() []error {
	if err.Cause == nil {
		return []error{err.Err}
	}
	return []error{err.Err, err.Cause}
}
