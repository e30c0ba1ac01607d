package chip8

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		line string
		code Opcode
	}{
		{"CLS", 0x00e0},
		{"cls", 0x00e0},
		{"RET", 0x00ee},
		{"SYS 0x123", 0x0123},
		{"CALL 0x456", 0x2456},
		{"call 2", 0x2002},
		{"JP 0x300", 0x1300},
		{"jp 0x300", 0x1300},
		{"Jp 0b111", 0x1007},
		{"JP V0, 0x300", 0xb300},
		{"LD V3, V4", 0x8340},
		{"LD V3, 0x45", 0x6345},
		{"LD v3, 0x45,", 0x6345},
		{"LD I, 0xabc", 0xaabc},
		{"LD V5, DT", 0xf507},
		{"LD V5, K", 0xf50a},
		{"LD DT, V6", 0xf615},
		{"LD ST, V7", 0xf718},
		{"LD F, V8", 0xf829},
		{"LD B, V9", 0xf933},
		{"LD [I], VA", 0xfa55},
		{"LD VB, [I]", 0xfb65},
		{"ld vb [i]", 0xfb65},
		{"SE V1, 0x22", 0x3122},
		{"SE V1, V2", 0x5120},
		{"SNE V1, 0x22", 0x4122},
		{"SNE V1, V2", 0x9120},
		{"ADD V1, 1", 0x7101},
		{"ADD V1, V2", 0x8124},
		{"ADD I, VC", 0xfc1e},
		{"OR V1, V2", 0x8121},
		{"AND V1, V2", 0x8122},
		{"XOR V1, V2", 0x8123},
		{"SUB V1, V2", 0x8125},
		{"SUBN V1, V2", 0x8127},
		{"SHR V1", 0x8106},
		{"SHR V1, V2", 0x8126},
		{"SHL V1", 0x810e},
		{"SHL V1, V2", 0x812e},
		{"RND VE, 0xff", 0xceff},
		{"DRW V1, V2, 15", 0xd12f},
		{"SKP V4", 0xe49e},
		{"SKNP V4", 0xe4a1},
		{"0xFF0F", 0xff0f},
		{"0x0", 0x0000},
	}

	for _, test := range tests {
		code, err := Encode(test.line)
		assert.NoError(err, test.line)
		assert.Equal(test.code, code, test.line)
	}
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		line string
		err  error
	}{
		{"NOP", ErrUnknownOp},
		{"start", ErrUnknownOp},
		{"CLS V1", ErrExtraArgs},
		{"RET 1", ErrExtraArgs},
		{"JP", ErrMissingArgs},
		{"JP V0, 1, 2", ErrExtraArgs},
		{"JP V1, 0x300", ErrInvalidArg},
		{"JP V0", ErrInvalidArg},
		{"JP 0x1000", ErrInvalidArg},
		{"LD V1", ErrMissingArgs},
		{"LD V1, V2, V3", ErrExtraArgs},
		{"LD I, V1", ErrInvalidArg},
		{"LD K, V1", ErrInvalidArg},
		{"LD V1, HF", ErrInvalidArg},
		{"LD VG, 1", ErrInvalidArg},
		{"LD V1, label", ErrInvalidArg},
		{"SE V1", ErrMissingArgs},
		{"SE 1, V1", ErrInvalidArg},
		{"ADD DT, V1", ErrInvalidArg},
		{"OR V1, 1", ErrInvalidArg},
		{"SHR", ErrMissingArgs},
		{"SHR V1, V2, V3", ErrExtraArgs},
		{"SHR 1", ErrInvalidArg},
		{"DRW V1, V2", ErrMissingArgs},
		{"DRW V1, V2, 16", ErrInvalidArg},
		{"SKP", ErrMissingArgs},
		{"SKP 1", ErrInvalidArg},
		{"0xFF0F 1", ErrExtraArgs},
		{"0x10000", ErrInvalidArg},
		{"0xFG", ErrInvalidArg},
	}

	for _, test := range tests {
		_, err := Encode(test.line)
		assert.ErrorIs(err, test.err, test.line)

		var inst *ErrInstruction
		if assert.True(errors.As(err, &inst), test.line) {
			assert.Equal(test.line, inst.Line)
		}
	}
}

func TestEncodeByteRange(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []string{"LD V1, %d", "SE V1, %d", "SNE V1, %d", "ADD V1, %d", "RND V1, %d"} {
		_, err := Encode(fmt.Sprintf(format, 255))
		assert.NoError(err, format)

		_, err = Encode(fmt.Sprintf(format, 256))
		assert.ErrorIs(err, ErrInvalidArg, format)
		var rng ErrOutOfRange
		assert.True(errors.As(err, &rng), format)
		assert.Equal(uint16(256), rng.Value)
	}
}

func TestEncodeOperandCause(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode("LD VG, 1")
	var reg ErrInvalidRegister
	assert.True(errors.As(err, &reg))
	assert.Equal("VG", string(reg))

	_, err = Encode("JP nowhere")
	var num ErrParseNumber
	assert.True(errors.As(err, &num))
	assert.Equal("nowhere", string(num))

	_, err = Encode("0xZZ")
	var raw ErrRawLiteral
	assert.True(errors.As(err, &raw))
	assert.Equal("0xZZ", string(raw))
}

func TestEncodeEmpty(t *testing.T) {
	assert.Panics(t, func() { _, _ = Encode("   ") })
}

func TestIsMnemonic(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsMnemonic("LD"))
	assert.True(IsMnemonic("sknp"))
	assert.False(IsMnemonic("alias"))
	assert.False(IsMnemonic("V1"))
}

func FuzzEncode(f *testing.F) {
	for _, seed := range []string{"LD V3, 0x45", "JP V0, 0x300", "DRW V1 V2 5", "0xFF0F", "SHR V1,", "x"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		if len(strings.Fields(line)) == 0 {
			return
		}
		code, err := Encode(line)
		if err == nil && code.String() == "" {
			t.Fatalf("%q: empty disassembly", line)
		}
	})
}
