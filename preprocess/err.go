package preprocess

import (
	"errors"

	"github.com/ezrec/ch8asm/translate"
)

var f = translate.From

var (
	// Alias errors
	ErrTooFewAliasArgs  = errors.New(f("alias needs a name and a value"))
	ErrTooManyAliasArgs = errors.New(f("alias has excessive arguments"))
	ErrReservedAlias    = errors.New(f("alias name is a reserved word"))
	ErrReusedAlias      = errors.New(f("alias duplicated"))

	// Sprite errors
	ErrTooFewSpriteArgs  = errors.New(f("sprite needs a name"))
	ErrTooManySpriteArgs = errors.New(f("sprite has excessive arguments"))
	ErrUnclosedSprite    = errors.New(f("sprite without endsprite"))
	ErrOversizedSprite   = errors.New(f("sprite larger than 15 bytes"))
	ErrInvalidSpriteByte = errors.New(f("sprite data is not a byte"))
	ErrLonelyEndsprite   = errors.New(f("endsprite without sprite"))

	// Offset errors
	ErrInvalidOffset = errors.New(f("free memory offset invalid"))

	// Label errors
	ErrInvalidLabel  = errors.New(f("label invalid"))
	ErrReservedLabel = errors.New(f("label name is a reserved word"))
	ErrReusedLabel   = errors.New(f("label duplicated"))
)

// ErrSyntax locates a preprocessing error. LineNo is zero for errors in
// predefined aliases.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
	Cause  error
}

func (err *ErrSyntax) Error() string {
	if err.Cause != nil {
		return f("line %d '%v' %v: %v", err.LineNo, err.Line, err.Err, err.Cause)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() []error {
	if err.Cause == nil {
		return []error{err.Err}
	}
	return []error{err.Err, err.Cause}
}

// syntaxError builds an ErrSyntax for a line.
func syntaxError(line Line, err error, cause ...error) *ErrSyntax {
	serr := &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
	if len(cause) != 0 {
		serr.Cause = cause[0]
	}
	return serr
}
