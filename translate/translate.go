// Package translate renders user-facing messages in the caller's locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LocaleEnv, when set, overrides the detected system locales.
const LocaleEnv = "CH8ASM_LOCALE"

var printer *message.Printer

func init() {
	var locales []string
	if lang, ok := os.LookupEnv(LocaleEnv); ok && len(lang) != 0 {
		locales = []string{lang}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("ch8asm: locale: %v", err)
		}
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
