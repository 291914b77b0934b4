package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/lexicat/pkg/catalog"
	"github.com/dmitrymomot/lexicat/pkg/locale"
)

// DefaultMaxPreferences caps the preference list when no explicit limit
// is configured.
const DefaultMaxPreferences = 16

// Resolver answers per-identifier string lookups by walking the user's
// preferred translation tables in priority order, falling back to the
// primary table. All state is computed once in New and frozen; every
// method afterwards is pure and safe for unlimited concurrent use
// without locks.
type Resolver struct {
	// tables holds every string table (primary + translations),
	// sorted ascending by language.
	tables []*catalog.StringTable

	// indexes are the translation indexes: positions in tables for each
	// preferred locale with an available translation, priority order.
	indexes []int

	// primary is the primary table's position in tables.
	primary int

	prefs []locale.Locale
}

// Option configures the Resolver during construction.
type Option func(*config) error

type config struct {
	prefs   []locale.Locale
	fromEnv bool
	max     int
}

// WithPreferences supplies the locale preference list directly, highest
// priority first. Useful for tests and for servers resolving per-request
// preferences via locale.ParseAcceptLanguage.
func WithPreferences(prefs ...locale.Locale) Option {
	return func(c *config) error {
		c.prefs = prefs
		c.fromEnv = false
		return nil
	}
}

// WithEnvPreferences reads the preference list once from the
// LANGUAGE/LC_ALL/LC_MESSAGES/LANG environment variables.
func WithEnvPreferences() Option {
	return func(c *config) error {
		c.fromEnv = true
		return nil
	}
}

// WithMaxPreferences bounds how many preferred locales are retained.
func WithMaxPreferences(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidMaxPreferences
		}
		c.max = n
		return nil
	}
}

// New builds a Resolver from a loaded catalog bundle. The whole fallback
// chain is computed here, in a single pass never re-entered: tables are
// sorted by language, the preference list is resolved, and each
// preferred language is matched against the sorted tables by equal-range
// search. With no options the preference list is empty and every lookup
// answers from the primary table.
func New(bundle *catalog.Bundle, opts ...Option) (*Resolver, error) {
	if bundle == nil || bundle.Primary == nil || bundle.Primary.Table == nil {
		return nil, ErrNilBundle
	}

	cfg := &config{max: DefaultMaxPreferences}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("resolver: failed to apply option: %w", err)
		}
	}

	prefs := cfg.prefs
	if cfg.fromEnv {
		sources, err := locale.FromEnv()
		if err != nil {
			return nil, err
		}
		prefs = sources.Preferences(cfg.max)
	} else if len(prefs) > cfg.max {
		prefs = prefs[:cfg.max]
	}

	tables := slices.Clone(bundle.Tables)
	slices.SortStableFunc(tables, func(a, b *catalog.StringTable) int {
		return strings.Compare(a.Language(), b.Language())
	})

	primary := slices.Index(tables, bundle.Primary.Table)
	if primary < 0 {
		return nil, ErrNilBundle
	}

	r := &Resolver{
		tables:  tables,
		primary: primary,
		prefs:   slices.Clone(prefs),
	}

	for _, pref := range prefs {
		// BinarySearchFunc lands on the leftmost table for the
		// language, so the first match per language is recorded.
		i, ok := slices.BinarySearchFunc(tables, pref.Language, func(t *catalog.StringTable, lang string) int {
			return strings.Compare(t.Language(), lang)
		})
		if !ok {
			continue
		}
		r.indexes = append(r.indexes, i)
	}

	return r, nil
}

// Resolve returns the text for the given identifier: the first hit along
// the translation indexes wins, otherwise the primary table answers.
// Identifiers declared by the primary catalog therefore never miss; an
// identifier outside the primary catalog is a contract violation reported
// as ErrUnknownIdentifier. Cost is O(P log n) for P matched preferences.
func (r *Resolver) Resolve(id string) (string, error) {
	for _, i := range r.indexes {
		if content, ok := r.tables[i].Lookup(id); ok {
			return content, nil
		}
	}
	if content, ok := r.tables[r.primary].Lookup(id); ok {
		return content, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
}

// T resolves the identifier, returning the identifier itself when it is
// unknown. Convenient in templates where an error return is awkward.
func (r *Resolver) T(id string) string {
	content, err := r.Resolve(id)
	if err != nil {
		return id
	}
	return content
}

// Has reports whether the primary catalog declares the identifier.
func (r *Resolver) Has(id string) bool {
	_, ok := r.tables[r.primary].Lookup(id)
	return ok
}

// Language returns the primary catalog's language.
func (r *Resolver) Language() string {
	return r.tables[r.primary].Language()
}

// Languages returns every available table language in ascending order.
func (r *Resolver) Languages() []string {
	langs := make([]string, len(r.tables))
	for i, t := range r.tables {
		langs[i] = t.Language()
	}
	return langs
}

// Preferences returns the retained locale preference list, priority order.
func (r *Resolver) Preferences() []locale.Locale {
	return slices.Clone(r.prefs)
}
