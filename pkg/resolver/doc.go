// Package resolver merges a locale preference list against the available
// string tables and answers per-identifier lookups with guaranteed
// fallback to the primary language.
//
// Construction runs exactly once and freezes everything: the tables are
// sorted by language, the preference list is resolved (from the
// environment or supplied directly), and each preferred language is
// matched against the sorted tables. Lookups afterwards are pure reads —
// no locks, no I/O, safe from any number of goroutines.
//
//	//go:embed catalogs
//	var catalogFS embed.FS
//
//	bundle, err := catalog.Load(catalogFS, "catalogs/strings.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	r, err := resolver.New(bundle, resolver.WithEnvPreferences())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r.T("greeting")        // first preferred translation that has it,
//	                       // otherwise the primary text
//	r.Has("greeting")      // identifier validity, O(log n)
//
// Matching is strict first-match-in-priority-order over exact languages.
// Country, encoding, and variant are ignored when matching because table
// languages are the bare codes declared by their catalogs, and an earlier
// preference always beats a later one even when the later table is more
// specific. An unmatched or empty preference list silently falls back to
// the primary language; that is the designed behavior, not an error.
package resolver
