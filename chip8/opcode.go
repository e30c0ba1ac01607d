package chip8

import (
	"fmt"
)

// X returns the first register nibble, 0x0X00.
func (code Opcode) X() uint16 {
	return (uint16(code) >> 8) & 0xf
}

// Y returns the second register nibble, 0x00Y0.
func (code Opcode) Y() uint16 {
	return (uint16(code) >> 4) & 0xf
}

// N returns the low nibble.
func (code Opcode) N() uint16 {
	return uint16(code) & 0xf
}

// KK returns the low byte.
func (code Opcode) KK() uint16 {
	return uint16(code) & 0xff
}

// NNN returns the 12-bit address field.
func (code Opcode) NNN() uint16 {
	return uint16(code) & 0xfff
}

// aluNames maps the low nibble of an 8xyN opcode to its mnemonic.
var aluNames = map[uint16]string{
	0x0: "LD",
	0x1: "OR",
	0x2: "AND",
	0x3: "XOR",
	0x4: "ADD",
	0x5: "SUB",
	0x6: "SHR",
	0x7: "SUBN",
	0xe: "SHL",
}

// timerFormats maps the low byte of an FxKK opcode to its assembly form.
var timerFormats = map[uint16]string{
	0x07: "LD V%X, DT",
	0x0a: "LD V%X, K",
	0x15: "LD DT, V%X",
	0x18: "LD ST, V%X",
	0x1e: "ADD I, V%X",
	0x29: "LD F, V%X",
	0x33: "LD B, V%X",
	0x55: "LD [I], V%X",
	0x65: "LD V%X, [I]",
}

// String returns the assembly language representation of this opcode.
// Words that are not instructions are rendered as raw literals.
func (code Opcode) String() string {
	x, y, n, kk, nnn := code.X(), code.Y(), code.N(), code.KK(), code.NNN()

	switch uint16(code) >> 12 {
	case 0x0:
		switch code {
		case 0x00e0:
			return "CLS"
		case 0x00ee:
			return "RET"
		}
		return fmt.Sprintf("SYS 0x%03X", nnn)
	case 0x1:
		return fmt.Sprintf("JP 0x%03X", nnn)
	case 0x2:
		return fmt.Sprintf("CALL 0x%03X", nnn)
	case 0x3:
		return fmt.Sprintf("SE V%X, 0x%02X", x, kk)
	case 0x4:
		return fmt.Sprintf("SNE V%X, 0x%02X", x, kk)
	case 0x5:
		if n == 0 {
			return fmt.Sprintf("SE V%X, V%X", x, y)
		}
	case 0x6:
		return fmt.Sprintf("LD V%X, 0x%02X", x, kk)
	case 0x7:
		return fmt.Sprintf("ADD V%X, 0x%02X", x, kk)
	case 0x8:
		name, ok := aluNames[n]
		if ok {
			return fmt.Sprintf("%v V%X, V%X", name, x, y)
		}
	case 0x9:
		if n == 0 {
			return fmt.Sprintf("SNE V%X, V%X", x, y)
		}
	case 0xa:
		return fmt.Sprintf("LD I, 0x%03X", nnn)
	case 0xb:
		return fmt.Sprintf("JP V0, 0x%03X", nnn)
	case 0xc:
		return fmt.Sprintf("RND V%X, 0x%02X", x, kk)
	case 0xd:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, n)
	case 0xe:
		switch kk {
		case 0x9e:
			return fmt.Sprintf("SKP V%X", x)
		case 0xa1:
			return fmt.Sprintf("SKNP V%X", x)
		}
	case 0xf:
		format, ok := timerFormats[kk]
		if ok {
			return fmt.Sprintf(format, x)
		}
	}

	return fmt.Sprintf("0x%04X", uint16(code))
}
