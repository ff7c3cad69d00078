package words

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultLang is the language every round is played in unless configured.
const DefaultLang = "en"

// ParseLang canonicalizes a language tag to its base language ("en-GB" -> "en").
func ParseLang(tag string) (language.Tag, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, err
	}
	base, _ := t.Base()
	return language.Make(base.String()), nil
}

// Normalize lowercases s with the case rules of lang, composes it (NFC) and
// trims surrounding whitespace, newlines included.
func Normalize(s string, lang language.Tag) string {
	s = norm.NFC.String(s)
	s = cases.Lower(lang).String(s)
	return strings.TrimSpace(s)
}
