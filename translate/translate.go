// Package translate formats user visible messages in the locale of the
// person running ibr.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages. The first is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var printer *message.Printer

func init() {
	loadCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ibr: locale: %v", err)
	}

	printer = message.NewPrinter(Match(locales...))
}

// Match picks the supported language closest to the given locales.
func Match(locales ...string) language.Tag {
	var tags []language.Tag
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	_, index, _ := language.NewMatcher(supported).Match(tags...)
	return supported[index]
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// In formats key for a specific language, regardless of the user's locale.
func In(tag language.Tag, key message.Reference, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
