package locale

import "strings"

// Locale is a structured descriptor parsed from one POSIX-style locale
// spec such as "de_AT.UTF-8@euro". Only Language is required; it is
// always purely alphabetic.
type Locale struct {
	Language string
	Country  string
	Encoding string
	Variant  string
}

// String reassembles the spec in canonical POSIX order:
// language[_COUNTRY][.ENCODING][@variant].
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Language)
	if l.Country != "" {
		b.WriteByte('_')
		b.WriteString(l.Country)
	}
	if l.Encoding != "" {
		b.WriteByte('.')
		b.WriteString(l.Encoding)
	}
	if l.Variant != "" {
		b.WriteByte('@')
		b.WriteString(l.Variant)
	}
	return b.String()
}

// ParseSpec parses a single locale spec. Segments are stripped
// right-to-left: "@variant" first, then ".encoding", then the remainder
// splits on the last "_" into language and country. A spec whose
// language portion is empty or contains non-alphabetic characters is
// reported as not ok; malformed specs are skipped, never fatal.
func ParseSpec(spec string) (Locale, bool) {
	spec = strings.TrimSpace(spec)

	var loc Locale
	if i := strings.LastIndexByte(spec, '@'); i >= 0 {
		loc.Variant = spec[i+1:]
		spec = spec[:i]
	}
	if i := strings.LastIndexByte(spec, '.'); i >= 0 {
		loc.Encoding = spec[i+1:]
		spec = spec[:i]
	}
	if i := strings.LastIndexByte(spec, '_'); i >= 0 {
		loc.Country = spec[i+1:]
		spec = spec[:i]
	}
	loc.Language = spec

	if !isAlpha(loc.Language) {
		return Locale{}, false
	}
	return loc, true
}

// ParseList splits a gettext-style preference value ("de_DE:fr:en") into
// ordered locales. Malformed specs are discarded, languages are
// deduplicated with the first occurrence winning, and the result is
// truncated to max entries (max <= 0 means unlimited).
func ParseList(value string, max int) []Locale {
	var locales []Locale
	seen := make(map[string]bool)

	for _, spec := range strings.Split(value, ":") {
		loc, ok := ParseSpec(spec)
		if !ok || seen[loc.Language] {
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

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
