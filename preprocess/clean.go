package preprocess

import (
	"strings"
)

// Clean splits source text into lines, removing comments (from ';' to the
// end of the line), surrounding whitespace and lines left empty.
func Clean(text string) (lines []Line) {
	for n, raw := range strings.Split(text, "\n") {
		code, _, _ := strings.Cut(raw, ";")
		code = strings.TrimSpace(code)
		if len(code) == 0 {
			continue
		}
		lines = append(lines, Line{LineNo: n + 1, Text: code})
	}

	return
}
