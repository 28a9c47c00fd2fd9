// Package translate renders user-facing message strings in the caller's
// locale. Message keys are en-US Sprintf formats.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ubrain: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	Match(locales...)
}

// Match selects the message language from a locale preference list.
// The process locale is matched at init; tests use this to pin en-US.
func Match(locales ...string) {
	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
