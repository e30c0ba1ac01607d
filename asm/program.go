package asm

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/ch8asm/chip8"
)

// Opcode is one assembled instruction with its source location.
type Opcode struct {
	LineNo int          // Source line, zero when not assembled from text.
	Addr   uint16       // Load address of the instruction.
	Text   string       // Normalized text the instruction was encoded from.
	Code   chip8.Opcode // Encoded instruction.
}

// Program is an assembled CHIP-8 program.
type Program struct {
	Origin  uint16
	Opcodes []Opcode
}

// Debug returns the instruction containing addr, or nil.
func (prog *Program) Debug(addr uint16) *Opcode {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+2 {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// Codes iterates over the address and opcode of every instruction.
func (prog *Program) Codes() iter.Seq2[uint16, chip8.Opcode] {
	return func(yield func(addr uint16, code chip8.Opcode) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Code) {
				return
			}
		}
	}
}

// Binary returns the program image, every opcode big-endian.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, 2*len(prog.Opcodes))
	for _, code := range prog.Codes() {
		bin = binary.BigEndian.AppendUint16(bin, uint16(code))
	}

	return
}

// WriteTo writes the program image to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(prog.Binary())
	n = int64(written)
	return
}

// Listing writes one line per instruction: address, opcode, disassembly
// and the source line it came from.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		if op.LineNo == 0 {
			_, err = fmt.Fprintf(w, "%03X  %04X  %v\n", op.Addr, uint16(op.Code), op.Code)
		} else {
			_, err = fmt.Fprintf(w, "%03X  %04X  %-20v ; %d: %v\n", op.Addr, uint16(op.Code), op.Code, op.LineNo, op.Text)
		}
		if err != nil {
			return
		}
	}

	return
}

// Disassemble decodes a program image loaded at origin. An odd trailing
// byte is padded with 0x00.
func Disassemble(bin []byte, origin uint16) (prog *Program) {
	prog = &Program{Origin: origin}
	for n := 0; n < len(bin); n += 2 {
		word := uint16(bin[n]) << 8
		if n+1 < len(bin) {
			word |= uint16(bin[n+1])
		}
		code := chip8.Opcode(word)
		prog.Opcodes = append(prog.Opcodes, Opcode{
			Addr: origin + uint16(n),
			Text: code.String(),
			Code: code,
		})
	}

	return
}
