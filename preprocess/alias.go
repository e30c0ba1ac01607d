package preprocess

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/ezrec/ch8asm/internal"
)

// Aliases resolves 'alias NAME VALUE' declarations. All declarations are
// collected first and removed, then every whole-token use of NAME in the
// remaining lines is replaced by VALUE. Values are not expanded again, so
// an alias of an alias keeps the inner name.
//
// predefined seeds the table; redeclaring one of its names is an error.
func Aliases(lines []Line, predefined map[string]string) (out []Line, err error) {
	table := make(map[string]string, len(predefined))

	for _, name := range slices.Sorted(maps.Keys(predefined)) {
		value := predefined[name]
		decl := Line{Text: strings.Join([]string{KeywordAlias, name, value}, " ")}
		if len(name) == 0 || len(value) == 0 || strings.ContainsFunc(name+value, unicode.IsSpace) {
			err = syntaxError(decl, ErrTooFewAliasArgs)
			return
		}
		if IsReserved(name) {
			err = syntaxError(decl, ErrReservedAlias)
			return
		}
		table[name] = value
	}

	for _, line := range lines {
		words := strings.Fields(line.Text)
		if !isKeyword(words, KeywordAlias) {
			out = append(out, line)
			continue
		}

		switch {
		case len(words) < 3:
			err = syntaxError(line, ErrTooFewAliasArgs)
			return
		case len(words) > 3:
			err = syntaxError(line, ErrTooManyAliasArgs)
			return
		}

		name := strings.TrimSuffix(words[1], ",")
		if len(name) == 0 {
			err = syntaxError(line, ErrTooFewAliasArgs)
			return
		}
		if IsReserved(name) {
			err = syntaxError(line, ErrReservedAlias)
			return
		}
		_, ok := table[name]
		if ok {
			err = syntaxError(line, ErrReusedAlias)
			return
		}
		table[name] = words[2]
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
