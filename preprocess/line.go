package preprocess

import (
	"slices"
	"strings"

	"github.com/ezrec/ch8asm/chip8"
)

// Line is one line of assembly text as it moves through the passes.
type Line struct {
	LineNo  int    // Source line the text originated from.
	Text    string // Trimmed, comment free text.
	Changed bool   // Set once any pass has rewritten the text.
}

func (line Line) String() string {
	return line.Text
}

// Preprocessor keywords.
const (
	KeywordAlias     = "alias"
	KeywordSprite    = "sprite"
	KeywordEndsprite = "endsprite"
)

var keywords = []string{KeywordAlias, KeywordSprite, KeywordEndsprite}

// IsReserved returns true if word is a mnemonic or a preprocessor keyword.
// Case is ignored.
func IsReserved(word string) bool {
	return chip8.IsMnemonic(word) || slices.Contains(keywords, strings.ToLower(word))
}

// isKeyword returns true if the first word of text is keyword.
func isKeyword(words []string, keyword string) bool {
	return len(words) > 0 && strings.EqualFold(words[0], keyword)
}

// isLabel returns true if text declares a label.
func isLabel(text string) bool {
	return strings.HasSuffix(text, ":")
}

// countInstructions returns the number of lines that will be encoded.
func countInstructions(lines []Line) (count int) {
	for _, line := range lines {
		if !isLabel(line.Text) {
			count++
		}
	}
	return
}

// Texts returns the text of every line.
func Texts(lines []Line) []string {
	texts := make([]string, len(lines))
	for n, line := range lines {
		texts[n] = line.Text
	}
	return texts
}
