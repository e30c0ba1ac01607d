package preprocess

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ezrec/ch8asm/chip8"
)

// OffsetMarker introduces a free memory offset.
const OffsetMarker = '#'

// Offsets resolves '#N' free memory markers. Free memory starts right
// after the program: origin + 2 bytes for every line that will be encoded.
// Each marker is replaced by the decimal address of free memory + N. Lines
// are rescanned until no marker remains, so running Offsets on its own
// output changes nothing.
func Offsets(lines []Line, origin uint16) (out []Line, err error) {
	free := int(origin) + 2*countInstructions(lines)

	out = make([]Line, len(lines))
	copy(out, lines)

	for {
		found := 0
		for n, line := range out {
			at := strings.IndexRune(line.Text, OffsetMarker)
			if at < 0 {
				continue
			}

			rest := line.Text[at+1:]
			end := strings.IndexFunc(rest, func(r rune) bool {
				return unicode.IsSpace(r) || r == ','
			})
			if end < 0 {
				end = len(rest)
			}
			digits := rest[:end]

			offset, perr := strconv.ParseUint(digits, 10, 16)
			if perr != nil {
				err = syntaxError(line, ErrInvalidOffset, chip8.ErrParseNumber(digits))
				return
			}
			addr := free + int(offset)
			if addr > 0xffff {
				err = syntaxError(line, ErrInvalidOffset, chip8.ErrOutOfRange{Value: uint16(offset), Max: uint16(max(0xffff-free, 0))})
				return
			}

			text := line.Text[:at] + strconv.Itoa(addr) + rest[end:]
			out[n] = Line{LineNo: line.LineNo, Text: text, Changed: true}
			found++
		}

		if found == 0 {
			break
		}
	}

	return
}
