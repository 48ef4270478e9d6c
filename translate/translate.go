package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// fallback is used when the environment names no locale.
const fallback = "en-US"

var printer = message.NewPrinter(message.MatchLanguage(languages()...))

// languages lists the preferred locales of the user, best first.
func languages() (tags []string) {
	tags, err := locale.GetLocales()
	if err != nil {
		log.Printf("tk1mem: locale: %v", err)
	}

	if len(tags) == 0 {
		tags = []string{fallback}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
