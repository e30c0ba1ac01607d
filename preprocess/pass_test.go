package preprocess

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ch8asm/chip8"
)

func TestAliasesWholeToken(t *testing.T) {
	assert := assert.New(t)

	lines, err := Aliases(Clean("alias N V3\nLD N, 1\nLD NN, N,\nADD VN, 1"), nil)
	assert.NoError(err)
	assert.Equal([]Line{
		{LineNo: 2, Text: "LD V3, 1", Changed: true},
		{LineNo: 3, Text: "LD NN, V3,", Changed: true},
		{LineNo: 4, Text: "ADD VN, 1"},
	}, lines)
}

func TestAliasesNotTransitive(t *testing.T) {
	assert := assert.New(t)

	lines, err := Aliases(Clean("alias A B\nalias B V1\nLD A, 1"), nil)
	assert.NoError(err)
	assert.Equal([]string{"LD B, 1"}, Texts(lines))
}

func TestAliasesCommaName(t *testing.T) {
	assert := assert.New(t)

	lines, err := Aliases(Clean("alias COUNT, VA\nADD COUNT, 1"), nil)
	assert.NoError(err)
	assert.Equal([]string{"ADD VA, 1"}, Texts(lines))
}

func TestSpritesOdd(t *testing.T) {
	assert := assert.New(t)

	lines, err := Sprites(Clean("CLS\nsprite dot\n0b10000000\n0x40,\n32\nendsprite\nRET"))
	assert.NoError(err)
	assert.Equal([]Line{
		{LineNo: 1, Text: "CLS"},
		{LineNo: 2, Text: "dot:", Changed: true},
		{LineNo: 3, Text: "0x8040", Changed: true},
		{LineNo: 5, Text: "0x2000", Changed: true},
		{LineNo: 7, Text: "RET"},
	}, lines)

	lines, err = Preprocess("sprite S,\n0x01\nendsprite\nLD I, S")
	assert.NoError(err)
	assert.Equal([]string{"0x0100", "LD I, 0x200"}, Texts(lines))

	_, err = Sprites(Clean("sprite ,\n1\nendsprite"))
	assert.ErrorIs(err, ErrTooFewSpriteArgs)
}

func TestSpritesLimit(t *testing.T) {
	assert := assert.New(t)

	program := "sprite tall\n"
	for range MaxSpriteBytes {
		program += "0xFF\n"
	}
	program += "endsprite"

	lines, err := Sprites(Clean(program))
	assert.NoError(err)
	assert.Equal(1+(MaxSpriteBytes+1)/2, len(lines))
	assert.Equal("0xFF00", lines[len(lines)-1].Text)

	lines, err = Sprites(Clean("sprite empty\nendsprite\nCLS"))
	assert.NoError(err)
	assert.Equal([]string{"empty:", "CLS"}, Texts(lines))
}

func TestOffsets(t *testing.T) {
	assert := assert.New(t)

	lines, err := Offsets(Clean("a:\nLD I, #0\nLD I, #4,\nb:\nSE V1, #1"), 0x200)
	assert.NoError(err)
	// 3 instructions: free memory at 0x206 = 518
	assert.Equal([]string{"a:", "LD I, 518", "LD I, 522,", "b:", "SE V1, 519"}, Texts(lines))

	again, err := Offsets(lines, 0x200)
	assert.NoError(err)
	assert.Equal(lines, again)
}

func TestOffsetsMultiple(t *testing.T) {
	assert := assert.New(t)

	lines, err := Offsets(Clean("#1 #2"), 0x200)
	assert.NoError(err)
	assert.Equal([]Line{{LineNo: 1, Text: "515 516", Changed: true}}, lines)
}

func TestOffsetsNoMarkers(t *testing.T) {
	assert := assert.New(t)

	input := Clean("CLS\nRET")
	lines, err := Offsets(input, 0x200)
	assert.NoError(err)
	assert.Equal(input, lines)
}

func TestOffsetsRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Offsets(Clean("LD I, #0"), 0xffff)
	assert.ErrorIs(err, ErrInvalidOffset)
	var rng chip8.ErrOutOfRange
	if assert.True(errors.As(err, &rng)) {
		assert.Equal(chip8.ErrOutOfRange{Value: 0, Max: 0}, rng)
	}

	_, err = Offsets(Clean("LD I, #65100"), 0x200)
	if assert.True(errors.As(err, &rng)) {
		assert.Equal(uint16(0xffff-0x202), rng.Max)
	}
}

func TestLabelsOperandNames(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"I", "i", "V1", "vf", "DT", "K", "[I]", "B", "10", "0x20"} {
		_, err := Labels(Clean(name+":\nLD I, 5"), 0x200)
		assert.ErrorIs(err, ErrReservedLabel, name)
	}

	lines, err := Labels(Clean("VBLANK:\nJP VBLANK\nbase:\nJP base"), 0x200)
	assert.NoError(err)
	assert.Equal([]string{"JP 0x200", "JP 0x202"}, Texts(lines))
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)

	lines, err := Labels(Clean("first:\nsecond:\nCLS\nthird:\nJP first\nCALL second,\nJP third\nSYS thirdly"), 0x200)
	assert.NoError(err)
	assert.Equal([]Line{
		{LineNo: 3, Text: "CLS"},
		{LineNo: 5, Text: "JP 0x200", Changed: true},
		{LineNo: 6, Text: "CALL 0x200,", Changed: true},
		{LineNo: 7, Text: "JP 0x202", Changed: true},
		{LineNo: 8, Text: "SYS thirdly"},
	}, lines)
}

func TestLabelsUnknownReference(t *testing.T) {
	assert := assert.New(t)

	lines, err := Labels(Clean("JP nowhere"), 0x200)
	assert.NoError(err)
	assert.Equal([]string{"JP nowhere"}, Texts(lines))
}
