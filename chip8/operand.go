package chip8

import (
	"strconv"
	"strings"
)

// Kind is the type of an operand.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindNumeric     = Kind(0)  // number
	KindRegister    = Kind(1)  // register
	KindAnyKey      = Kind(2)  // K
	KindIndex       = Kind(3)  // I
	KindIndexRange  = Kind(4)  // [I]
	KindDelayTimer  = Kind(5)  // DT
	KindSoundTimer  = Kind(6)  // ST
	KindSprite      = Kind(7)  // F
	KindBcd         = Kind(8)  // B
	KindHiResSprite = Kind(9)  // HF
	KindRpl         = Kind(10) // R
)

// Operand is a parsed instruction argument.
type Operand struct {
	Kind  Kind
	Value uint16 // Number for KindNumeric, register index for KindRegister.
}

// Limits of the numeric operand fields.
const (
	MaxAddress = 0xfff
	MaxByte    = 0xff
	MaxNibble  = 0xf
)

// namedMap maps the upper-cased named operands to their kind.
var namedMap = map[string]Kind{
	"K":   KindAnyKey,
	"I":   KindIndex,
	"[I]": KindIndexRange,
	"DT":  KindDelayTimer,
	"ST":  KindSoundTimer,
	"F":   KindSprite,
	"B":   KindBcd,
	"HF":  KindHiResSprite,
	"R":   KindRpl,
}

// ParseOperand parses a single token into an Operand.
func ParseOperand(token string) (op Operand, err error) {
	kind, ok := namedMap[strings.ToUpper(token)]
	if ok {
		op = Operand{Kind: kind}
		return
	}

	if strings.HasPrefix(token, "V") || strings.HasPrefix(token, "v") {
		if len(token) != 2 {
			err = ErrInvalidRegister(token)
			return
		}
		reg, perr := strconv.ParseUint(token[1:], 16, 4)
		if perr != nil {
			err = ErrInvalidRegister(token)
			return
		}
		op = Operand{Kind: KindRegister, Value: uint16(reg)}
		return
	}

	value, err := ParseNumber(token)
	if err != nil {
		return
	}

	op = Operand{Kind: KindNumeric, Value: value}
	return
}

// ParseNumber parses an unsigned 16-bit literal: hexadecimal with a 0x
// prefix, binary with a 0b prefix, decimal otherwise.
func ParseNumber(word string) (value uint16, err error) {
	digits := word
	base := 10
	switch {
	case strings.HasPrefix(word, "0x"):
		digits = word[2:]
		base = 16
	case strings.HasPrefix(word, "0b"):
		digits = word[2:]
		base = 2
	}

	v64, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		err = ErrParseNumber(digits)
		return
	}

	value = uint16(v64)
	return
}

// IsNumeric returns true if the operand is a literal number.
func (op Operand) IsNumeric() bool {
	return op.Kind == KindNumeric
}

// ranged returns the numeric value if it does not exceed max.
func (op Operand) ranged(max uint16) (uint16, error) {
	if op.Kind != KindNumeric {
		panic("chip8: range check on " + op.Kind.String() + " operand")
	}
	if op.Value > max {
		return 0, ErrOutOfRange{Value: op.Value, Max: max}
	}
	return op.Value, nil
}

// Address returns the operand as a 12-bit address.
func (op Operand) Address() (uint16, error) {
	return op.ranged(MaxAddress)
}

// Byte returns the operand as an 8-bit value.
func (op Operand) Byte() (uint8, error) {
	v, err := op.ranged(MaxByte)
	return uint8(v), err
}

// Nibble returns the operand as a 4-bit value.
func (op Operand) Nibble() (uint8, error) {
	v, err := op.ranged(MaxNibble)
	return uint8(v), err
}
