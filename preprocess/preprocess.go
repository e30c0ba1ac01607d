// Package preprocess rewrites CHIP-8 assembly text into a list of purely
// numeric instruction lines, ready for chip8.Encode.
//
// The passes run in a fixed order: Clean, Aliases, Sprites, Offsets and
// Labels. Aliases run first so sprite blocks may use them, sprites before
// offsets and labels so their words and labels take part in addressing.
package preprocess

import (
	"log"

	"github.com/ezrec/ch8asm/chip8"
)

// Preprocessor runs the preprocessing passes over source text.
type Preprocessor struct {
	Origin  uint16 // Load address of the program; chip8.Origin when zero.
	Verbose bool   // If set, verbosely logs the result of every pass.

	predefine map[string]string // Aliases declared before the source.
}

// Predefine declares an alias ahead of the source text. A later 'alias'
// of the same name is an error.
func (pp *Preprocessor) Predefine(name string, value string) {
	if pp.predefine == nil {
		pp.predefine = map[string]string{name: value}
	} else {
		pp.predefine[name] = value
	}
}

// origin returns the effective load address.
func (pp *Preprocessor) origin() uint16 {
	if pp.Origin == 0 {
		return chip8.Origin
	}
	return pp.Origin
}

type pass struct {
	name string
	fn   func(lines []Line) ([]Line, error)
}

// Process runs every pass over text and returns the normalized lines.
func (pp *Preprocessor) Process(text string) (lines []Line, err error) {
	origin := pp.origin()

	passes := []pass{
		{"alias", func(lines []Line) ([]Line, error) { return Aliases(lines, pp.predefine) }},
		{"sprite", Sprites},
		{"offset", func(lines []Line) ([]Line, error) { return Offsets(lines, origin) }},
		{"label", func(lines []Line) ([]Line, error) { return Labels(lines, origin) }},
	}

	lines = Clean(text)
	pp.logLines("clean", lines)

	for _, p := range passes {
		lines, err = p.fn(lines)
		if err != nil {
			lines = nil
			return
		}
		pp.logLines(p.name, lines)
	}

	return
}

func (pp *Preprocessor) logLines(name string, lines []Line) {
	if !pp.Verbose {
		return
	}

	log.Printf("%v: %d lines\n", name, len(lines))
	for _, line := range lines {
		if line.Changed {
			log.Printf("%v: %d: %v\n", name, line.LineNo, line.Text)
		}
	}
}

// Preprocess runs every pass over text with the default origin and no
// predefined aliases.
func Preprocess(text string) ([]Line, error) {
	pp := &Preprocessor{}
	return pp.Process(text)
}
