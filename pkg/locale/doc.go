// Package locale parses POSIX/gettext-style locale preferences into an
// ordered, deduplicated list of structured locale descriptors.
//
// The parser follows the gettext conventions exactly: four environment
// variables are consulted in fixed priority — LANGUAGE, LC_ALL,
// LC_MESSAGES, LANG — and the first non-empty value wins. The winning
// value is split on ":" into individual specs, each parsed right-to-left
// as language[_COUNTRY][.ENCODING][@variant]. Malformed specs are
// silently skipped rather than failing the whole list, and languages are
// deduplicated with the first occurrence keeping its priority slot.
//
// Two sentinel values disable internationalization entirely (an empty
// preference list): a winning value of exactly "C", and a LANG value
// beginning with a path separator.
//
//	sources, err := locale.FromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	prefs := sources.Preferences(16)
//	// LANGUAGE="de_AT.UTF-8:fr:de" => [de_AT.UTF-8 fr]
//
// For web handlers, ParseAcceptLanguage produces the same list shape
// from an Accept-Language header.
package locale
