// Package chip8 implements the operand parser, instruction encoder and
// disassembler for the CHIP-8 virtual CPU.
//
// The CPU has sixteen 8-bit registers (V0-VF), a 12-bit index register (I),
// a delay timer (DT) and a sound timer (ST). Every instruction is a single
// 16-bit big-endian word; programs are loaded at Origin.
//
// Encode accepts one normalized line of assembly text, such as
// "LD V3, 0x45", and returns its opcode. Opcode.String performs the reverse.
package chip8
