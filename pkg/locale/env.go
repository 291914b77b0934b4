package locale

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Sources carries the raw preference values from the four POSIX/gettext
// environment variables, highest priority first. Exact names and order
// are part of the compatibility contract with existing deployments.
type Sources struct {
	// Language is the gettext multi-locale override (colon-separated).
	Language string `env:"LANGUAGE"`

	// AllCategories overrides every locale category.
	AllCategories string `env:"LC_ALL"`

	// Messages overrides the messages category only.
	Messages string `env:"LC_MESSAGES"`

	// Base is the lowest-priority base variable.
	Base string `env:"LANG"`
}

// FromEnv reads the four locale variables from the process environment.
func FromEnv() (Sources, error) {
	var s Sources
	if err := env.Parse(&s); err != nil {
		return Sources{}, fmt.Errorf("locale: parsing environment: %w", err)
	}
	return s, nil
}

// Preferences resolves the sources into the user's ordered locale list.
// The first non-empty value wins outright (priority order, never
// concatenation). Internationalization is disabled, yielding an empty
// list, when the winning value is exactly "C", or when it comes from the
// Base slot and begins with a path separator (some systems store a
// locale archive path in LANG). Otherwise the winner is split and parsed
// per ParseList with the given max.
func (s Sources) Preferences(max int) []Locale {
	slots := []struct {
		value string
		base  bool
	}{
		{s.Language, false},
		{s.AllCategories, false},
		{s.Messages, false},
		{s.Base, true},
	}

	for _, slot := range slots {
		value := strings.TrimSpace(slot.value)
		if value == "" {
			continue
		}
		if value == "C" {
			return nil
		}
		if slot.base && (value[0] == '/' || value[0] == os.PathSeparator) {
			return nil
		}
		return ParseList(value, max)
	}

	return nil
}
