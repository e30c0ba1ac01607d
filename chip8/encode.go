package chip8

import (
	"strconv"
	"strings"

	"github.com/ezrec/ch8asm/internal"
)

// Opcode is a single encoded 16-bit instruction.
type Opcode uint16

// Origin is the default load address of a program.
const Origin = 0x200

// instruction describes the accepted argument count of a mnemonic and how
// its operands are packed.
type instruction struct {
	min, max int
	encode   func(args []Operand) (Opcode, error)
}

var instructionMap map[string]instruction

func init() {
	instructionMap = map[string]instruction{
		"CLS":  {0, 0, fixed(0x00e0)},
		"RET":  {0, 0, fixed(0x00ee)},
		"SYS":  {1, 1, addressed(0x0000)},
		"CALL": {1, 1, addressed(0x2000)},
		"JP":   {1, 2, encodeJp},
		"LD":   {2, 2, encodeLd},
		"SE":   {2, 2, skipEqual(0x3000, 0x5000)},
		"SNE":  {2, 2, skipEqual(0x4000, 0x9000)},
		"ADD":  {2, 2, encodeAdd},
		"OR":   {2, 2, alu(0x1)},
		"AND":  {2, 2, alu(0x2)},
		"XOR":  {2, 2, alu(0x3)},
		"SUB":  {2, 2, alu(0x5)},
		"SUBN": {2, 2, alu(0x7)},
		"SHR":  {1, 2, shift(0x6)},
		"SHL":  {1, 2, shift(0xe)},
		"RND":  {2, 2, encodeRnd},
		"DRW":  {3, 3, encodeDrw},
		"SKP":  {1, 1, key(0xe09e)},
		"SKNP": {1, 1, key(0xe0a1)},
	}
}

// IsMnemonic returns true if word names an instruction, in any case.
func IsMnemonic(word string) bool {
	_, ok := instructionMap[strings.ToUpper(word)]
	return ok
}

// Encode assembles one normalized line of text into its opcode. The line
// must not be empty.
func Encode(line string) (code Opcode, err error) {
	var words []string
	for _, word := range internal.Tokens(line) {
		words = append(words, word)
	}

	if len(words) == 0 {
		panic("chip8: Encode of an empty line")
	}

	inst, ok := instructionMap[strings.ToUpper(words[0])]
	if !ok {
		if strings.HasPrefix(words[0], "0x") {
			return encodeRaw(line, words)
		}
		err = &ErrInstruction{Line: line, Err: ErrUnknownOp}
		return
	}

	words = words[1:]
	if len(words) < inst.min {
		err = &ErrInstruction{Line: line, Err: ErrMissingArgs}
		return
	}
	if len(words) > inst.max {
		err = &ErrInstruction{Line: line, Err: ErrExtraArgs}
		return
	}

	args := make([]Operand, len(words))
	for n, word := range words {
		args[n], err = ParseOperand(word)
		if err != nil {
			err = &ErrInstruction{Line: line, Err: ErrInvalidArg, Cause: err}
			return
		}
	}

	code, err = inst.encode(args)
	if err == ErrInvalidArg {
		err = &ErrInstruction{Line: line, Err: ErrInvalidArg}
	} else if err != nil {
		err = &ErrInstruction{Line: line, Err: ErrInvalidArg, Cause: err}
	}

	return
}

// encodeRaw passes a standalone hexadecimal word through verbatim.
func encodeRaw(line string, words []string) (code Opcode, err error) {
	if len(words) > 1 {
		err = &ErrInstruction{Line: line, Err: ErrExtraArgs}
		return
	}

	value, perr := strconv.ParseUint(words[0][2:], 16, 16)
	if perr != nil {
		err = &ErrInstruction{Line: line, Err: ErrInvalidArg, Cause: ErrRawLiteral(words[0])}
		return
	}

	code = Opcode(value)
	return
}

// match returns true if the operand kinds are exactly kinds.
func match(args []Operand, kinds ...Kind) bool {
	if len(args) != len(kinds) {
		return false
	}
	for n, kind := range kinds {
		if args[n].Kind != kind {
			return false
		}
	}
	return true
}

func withX(base uint16, x Operand) Opcode {
	return Opcode(base | x.Value<<8)
}

func withXY(base uint16, x, y Operand) Opcode {
	return Opcode(base | x.Value<<8 | y.Value<<4)
}

func withXKK(base uint16, x, kk Operand) (Opcode, error) {
	b, err := kk.Byte()
	if err != nil {
		return 0, err
	}
	return Opcode(base | x.Value<<8 | uint16(b)), nil
}

func withNNN(base uint16, nnn Operand) (Opcode, error) {
	addr, err := nnn.Address()
	if err != nil {
		return 0, err
	}
	return Opcode(base | addr), nil
}

func fixed(word uint16) func([]Operand) (Opcode, error) {
	return func([]Operand) (Opcode, error) {
		return Opcode(word), nil
	}
}

// addressed encodes SYS and CALL: xnnn.
func addressed(base uint16) func([]Operand) (Opcode, error) {
	return func(args []Operand) (Opcode, error) {
		if !match(args, KindNumeric) {
			return 0, ErrInvalidArg
		}
		return withNNN(base, args[0])
	}
}

// skipEqual encodes SE and SNE: the byte form and the register form.
func skipEqual(byteBase, regBase uint16) func([]Operand) (Opcode, error) {
	return func(args []Operand) (Opcode, error) {
		switch {
		case match(args, KindRegister, KindNumeric):
			return withXKK(byteBase, args[0], args[1])
		case match(args, KindRegister, KindRegister):
			return withXY(regBase, args[0], args[1]), nil
		}
		return 0, ErrInvalidArg
	}
}

// alu encodes the register to register operations 8xyN.
func alu(op uint16) func([]Operand) (Opcode, error) {
	return func(args []Operand) (Opcode, error) {
		if !match(args, KindRegister, KindRegister) {
			return 0, ErrInvalidArg
		}
		return withXY(0x8000|op, args[0], args[1]), nil
	}
}

// shift encodes SHR and SHL. Vy is 0 when absent.
func shift(op uint16) func([]Operand) (Opcode, error) {
	return func(args []Operand) (Opcode, error) {
		switch {
		case match(args, KindRegister):
			return withX(0x8000|op, args[0]), nil
		case match(args, KindRegister, KindRegister):
			return withXY(0x8000|op, args[0], args[1]), nil
		}
		return 0, ErrInvalidArg
	}
}

// key encodes SKP and SKNP.
func key(base uint16) func([]Operand) (Opcode, error) {
	return func(args []Operand) (Opcode, error) {
		if !match(args, KindRegister) {
			return 0, ErrInvalidArg
		}
		return withX(base, args[0]), nil
	}
}

func encodeJp(args []Operand) (Opcode, error) {
	switch {
	case match(args, KindNumeric):
		return withNNN(0x1000, args[0])
	case match(args, KindRegister, KindNumeric) && args[0].Value == 0:
		return withNNN(0xb000, args[1])
	}
	return 0, ErrInvalidArg
}

func encodeLd(args []Operand) (Opcode, error) {
	vx, vy := args[0], args[1]
	switch {
	case match(args, KindRegister, KindRegister):
		return withXY(0x8000, vx, vy), nil
	case match(args, KindRegister, KindNumeric):
		return withXKK(0x6000, vx, vy)
	case match(args, KindIndex, KindNumeric):
		return withNNN(0xa000, vy)
	case match(args, KindRegister, KindDelayTimer):
		return withX(0xf007, vx), nil
	case match(args, KindRegister, KindAnyKey):
		return withX(0xf00a, vx), nil
	case match(args, KindDelayTimer, KindRegister):
		return withX(0xf015, vy), nil
	case match(args, KindSoundTimer, KindRegister):
		return withX(0xf018, vy), nil
	case match(args, KindSprite, KindRegister):
		return withX(0xf029, vy), nil
	case match(args, KindBcd, KindRegister):
		return withX(0xf033, vy), nil
	case match(args, KindIndexRange, KindRegister):
		return withX(0xf055, vy), nil
	case match(args, KindRegister, KindIndexRange):
		return withX(0xf065, vx), nil
	}
	return 0, ErrInvalidArg
}

func encodeAdd(args []Operand) (Opcode, error) {
	switch {
	case match(args, KindRegister, KindNumeric):
		return withXKK(0x7000, args[0], args[1])
	case match(args, KindRegister, KindRegister):
		return withXY(0x8004, args[0], args[1]), nil
	case match(args, KindIndex, KindRegister):
		return withX(0xf01e, args[1]), nil
	}
	return 0, ErrInvalidArg
}

func encodeRnd(args []Operand) (Opcode, error) {
	if !match(args, KindRegister, KindNumeric) {
		return 0, ErrInvalidArg
	}
	return withXKK(0xc000, args[0], args[1])
}

func encodeDrw(args []Operand) (Opcode, error) {
	if !match(args, KindRegister, KindRegister, KindNumeric) {
		return 0, ErrInvalidArg
	}
	n, err := args[2].Nibble()
	if err != nil {
		return 0, err
	}
	return Opcode(0xd000 | args[0].Value<<8 | args[1].Value<<4 | uint16(n)), nil
}
