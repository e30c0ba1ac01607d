// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm assembles CHIP-8 source text into a Program.
package asm

import (
	"io"
	"log"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/ch8asm/chip8"
	"github.com/ezrec/ch8asm/preprocess"
)

// Assembler preprocesses and encodes CHIP-8 assembly text.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Origin  uint16 // Load address of the program; chip8.Origin when zero.
	Jobs    int    // Number of lines encoded concurrently; sequential below 2.

	predefine map[string]string // Predefined aliases.
}

// Predefine defines an alias before the source text is read.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse reads all of input and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.Assemble(string(data))
}

// Assemble assembles source text into a Program. The first error, in
// source line order, stops the assembly.
func (asm *Assembler) Assemble(text string) (prog *Program, err error) {
	origin := asm.Origin
	if origin == 0 {
		origin = chip8.Origin
	}

	pp := &preprocess.Preprocessor{Origin: origin, Verbose: asm.Verbose}
	for name, value := range maps.All(asm.predefine) {
		pp.Predefine(name, value)
	}

	lines, err := pp.Process(text)
	if err != nil {
		return
	}

	codes, err := asm.encode(lines)
	if err != nil {
		return
	}

	prog = &Program{
		Origin:  origin,
		Opcodes: make([]Opcode, len(lines)),
	}
	for n, line := range lines {
		op := Opcode{
			LineNo: line.LineNo,
			Addr:   origin + uint16(2*n),
			Text:   line.Text,
			Code:   codes[n],
		}
		if asm.Verbose {
			log.Printf("%03X: %04X %v\n", op.Addr, uint16(op.Code), op.Code)
		}
		prog.Opcodes[n] = op
	}

	return
}

// encode encodes every line, concurrently when Jobs allows.
func (asm *Assembler) encode(lines []preprocess.Line) (codes []chip8.Opcode, err error) {
	codes = make([]chip8.Opcode, len(lines))
	errs := make([]error, len(lines))

	if asm.Jobs < 2 {
		for n, line := range lines {
			codes[n], errs[n] = chip8.Encode(line.Text)
			if errs[n] != nil {
				break
			}
		}
	} else {
		var group errgroup.Group
		group.SetLimit(asm.Jobs)
		for n, line := range lines {
			group.Go(func() error {
				codes[n], errs[n] = chip8.Encode(line.Text)
				return nil
			})
		}
		_ = group.Wait()
	}

	for n, lerr := range errs {
		if lerr != nil {
			codes = nil
			err = &ErrSyntax{LineNo: lines[n].LineNo, Line: lines[n].Text, Err: lerr}
			return
		}
	}

	return
}
