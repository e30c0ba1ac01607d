package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	tests := map[Opcode]string{
		0x00e0: "CLS",
		0x00ee: "RET",
		0x0123: "SYS 0x123",
		0x1300: "JP 0x300",
		0x2456: "CALL 0x456",
		0x6345: "LD V3, 0x45",
		0x5120: "SE V1, V2",
		0x5121: "0x5121",
		0x8126: "SHR V1, V2",
		0x8128: "0x8128",
		0xb300: "JP V0, 0x300",
		0xd12f: "DRW V1, V2, 15",
		0xe49e: "SKP V4",
		0xe4a2: "0xE4A2",
		0xfa55: "LD [I], VA",
		0xfb65: "LD VB, [I]",
		0xf0ff: "0xF0FF",
	}

	for code, text := range tests {
		assert.Equal(text, code.String())
	}
}

func TestOpcodeFields(t *testing.T) {
	assert := assert.New(t)

	code := Opcode(0xd12f)
	assert.Equal(uint16(0x1), code.X())
	assert.Equal(uint16(0x2), code.Y())
	assert.Equal(uint16(0xf), code.N())
	assert.Equal(uint16(0x2f), code.KK())
	assert.Equal(uint16(0x12f), code.NNN())
}

func TestOpcodeRoundTrip(t *testing.T) {
	for word := range 0x10000 {
		code := Opcode(word)
		text := code.String()
		again, err := Encode(text)
		if err != nil {
			t.Fatalf("%#04x %q: %v", word, text, err)
		}
		if again != code {
			t.Fatalf("%#04x %q: re-encoded as %#04x", word, text, uint16(again))
		}
	}
}
