package locale

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage converts an HTTP Accept-Language header into the
// same ordered, language-deduplicated locale list that Preferences
// produces from the environment, so web handlers and CLI programs feed
// the resolver identically. Quality-value ordering is delegated to
// x/text; only base language and country survive the conversion — no
// script or CLDR matching happens here. A malformed header yields an
// empty list.
func ParseAcceptLanguage(header string, max int) []Locale {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	var locales []Locale
	seen := make(map[string]bool)

	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}

		loc := Locale{Language: base.String()}
		if region, conf := tag.Region(); conf == language.Exact && region.IsCountry() {
			loc.Country = region.String()
		}

		if seen[loc.Language] {
			continue
		}
		seen[loc.Language] = true
		locales = append(locales, loc)
		if max > 0 && len(locales) == max {
			break
		}
	}

	return locales
}
