package preprocess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ezrec/ch8asm/chip8"
	"github.com/ezrec/ch8asm/internal"
)

// Labels resolves 'NAME:' declarations. Names that are reserved words or
// that read as operands are rejected. A label addresses the next line
// that will be encoded: origin + 2 bytes for every instruction before it.
// Declarations are removed and whole-token references are replaced by the
// hexadecimal address.
func Labels(lines []Line, origin uint16) (out []Line, err error) {
	table := make(map[string]string)

	for _, line := range lines {
		if !isLabel(line.Text) {
			out = append(out, line)
			continue
		}

		name := strings.TrimSuffix(line.Text, ":")
		if len(name) == 0 || strings.ContainsFunc(name, unicode.IsSpace) {
			err = syntaxError(line, ErrInvalidLabel)
			return
		}
		if IsReserved(name) || isOperand(name) {
			err = syntaxError(line, ErrReservedLabel)
			return
		}
		_, ok := table[name]
		if ok {
			err = syntaxError(line, ErrReusedLabel)
			return
		}

		table[name] = fmt.Sprintf("0x%X", int(origin)+2*len(out))
	}

	if len(table) == 0 {
		return
	}

	lookup := func(token string) (value string, ok bool) {
		value, ok = table[token]
		return
	}

	for n, line := range out {
		text, changed := internal.ReplaceTokens(line.Text, lookup)
		if changed {
			out[n] = Line{LineNo: line.LineNo, Text: text, Changed: true}
		}
	}

	return
}

// isOperand returns true if name already reads as an operand: a register,
// a named operand such as I or DT, or a number.
func isOperand(name string) bool {
	_, err := chip8.ParseOperand(name)
	return err == nil
}
