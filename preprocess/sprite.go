package preprocess

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/ch8asm/chip8"
	"github.com/ezrec/ch8asm/internal"
)

// MaxSpriteBytes is the tallest sprite DRW can display.
const MaxSpriteBytes = chip8.MaxNibble

// Sprites resolves 'sprite NAME' ... 'endsprite' blocks. Each line of the
// block holds one byte; the bytes are packed big-endian two to a word, an
// odd final byte padded with 0x00. The block is replaced by the label
// 'NAME:' followed by one raw word line per packed pair.
func Sprites(lines []Line) (out []Line, err error) {
	for n := 0; n < len(lines); n++ {
		line := lines[n]
		words := strings.Fields(line.Text)

		if isKeyword(words, KeywordEndsprite) {
			err = syntaxError(line, ErrLonelyEndsprite)
			return
		}

		if !isKeyword(words, KeywordSprite) {
			out = append(out, line)
			continue
		}

		switch {
		case len(words) < 2:
			err = syntaxError(line, ErrTooFewSpriteArgs)
			return
		case len(words) > 2:
			err = syntaxError(line, ErrTooManySpriteArgs)
			return
		}

		name := strings.TrimSuffix(words[1], ",")
		if len(name) == 0 {
			err = syntaxError(line, ErrTooFewSpriteArgs)
			return
		}

		end := slices.IndexFunc(lines[n+1:], func(l Line) bool {
			return strings.EqualFold(l.Text, KeywordEndsprite)
		})
		if end < 0 {
			err = syntaxError(line, ErrUnclosedSprite)
			return
		}
		body := lines[n+1 : n+1+end]
		if len(body) > MaxSpriteBytes {
			err = syntaxError(line, ErrOversizedSprite)
			return
		}

		data := make([]byte, len(body))
		for m, byteLine := range body {
			data[m], err = spriteByte(byteLine)
			if err != nil {
				return
			}
		}

		label := Line{LineNo: line.LineNo, Text: name + ":", Changed: true}
		out = slices.AppendSeq(out, internal.IterSeqConcat(
			slices.Values([]Line{label}),
			spriteWords(body, data),
		))

		n += end + 1
	}

	return
}

// spriteByte parses a single byte of sprite data.
func spriteByte(line Line) (value byte, err error) {
	words := strings.Fields(line.Text)
	if len(words) != 1 {
		err = syntaxError(line, ErrInvalidSpriteByte)
		return
	}

	op, err := chip8.ParseOperand(strings.TrimSuffix(words[0], ","))
	if err != nil {
		err = syntaxError(line, ErrInvalidSpriteByte, err)
		return
	}
	if !op.IsNumeric() {
		err = syntaxError(line, ErrInvalidSpriteByte)
		return
	}

	value, err = op.Byte()
	if err != nil {
		err = syntaxError(line, ErrInvalidSpriteByte, err)
		return
	}

	return
}

// spriteWords yields the raw word lines for the packed sprite data. Each
// word keeps the source line of its first byte.
func spriteWords(body []Line, data []byte) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for n := 0; n < len(data); n += 2 {
			word := uint16(data[n]) << 8
			if n+1 < len(data) {
				word |= uint16(data[n+1])
			}
			line := Line{LineNo: body[n].LineNo, Text: fmt.Sprintf("0x%04X", word), Changed: true}
			if !yield(line) {
				return
			}
		}
	}
}
