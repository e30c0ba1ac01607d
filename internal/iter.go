package internal

import (
	"iter"
	"strings"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Tokens yields the whitespace separated tokens of a line, with a single
// trailing comma removed from each.
func Tokens(line string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, field := range strings.Fields(line) {
			if !yield(n, strings.TrimSuffix(field, ",")) {
				return
			}
		}
	}
}

// ReplaceTokens rebuilds line with every whole token found in table
// substituted by its value. A trailing comma on a token is kept. The line is
// returned unmodified, and changed is false, when no token matched.
func ReplaceTokens(line string, table func(token string) (string, bool)) (out string, changed bool) {
	fields := strings.Fields(line)
	for n, field := range fields {
		token, comma := strings.CutSuffix(field, ",")
		value, ok := table(token)
		if !ok {
			continue
		}
		changed = true
		if comma {
			value += ","
		}
		fields[n] = value
	}

	if !changed {
		return line, false
	}

	return strings.Join(fields, " "), true
}
