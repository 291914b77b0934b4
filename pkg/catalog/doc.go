// Package catalog parses and validates string-resource catalogs into
// immutable, identifier-sorted string tables.
//
// A catalog is a small structured document with a single <resources> root.
// The primary catalog declares the application's language, every valid
// string identifier with its default text, and the set of available
// translations. Each translation catalog overrides a subset of the primary
// identifiers for one language. Validation is strict and all-or-nothing:
// a malformed catalog never produces a partially usable table.
//
// # Document Shape
//
// XML is the canonical format:
//
//	<resources language="en">
//	    <translation language="de"/>
//	    <translation language="ja">custom/strings.ja.xml</translation>
//	    <string name="greeting">Hello</string>
//	    <string name="farewell">Goodbye</string>
//	</resources>
//
// A translation declaration without explicit text content defaults its
// path to "strings.<language>.xml" next to the primary catalog. The same
// logical shape is accepted from YAML (.yaml/.yml):
//
//	language: en
//	translations:
//	  - language: de
//	strings:
//	  greeting: Hello
//	  farewell: Goodbye
//
// # Loading
//
// Parse a single document with ParsePrimary or ParseTranslation, or load
// the whole set in one call from any fs.FS:
//
//	//go:embed catalogs
//	var catalogFS embed.FS
//
//	bundle, err := catalog.Load(catalogFS, "catalogs/strings.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Load parses the primary catalog, then every declared translation
// relative to the primary's directory, validating that translations only
// override identifiers the primary declares. The returned Bundle feeds
// the resolver package directly.
//
// # Validation Rules
//
// Parsing fails with a sentinel error (all format errors, all fatal) when:
//
//   - the root element is missing, duplicated, or not <resources>
//   - a primary catalog lacks the language attribute
//   - a translation catalog declares translations of its own
//   - a translation declaration lacks a language, or repeats one
//   - a string resource has a missing or empty name, or repeats one
//   - a translation resource's identifier is unknown to the primary catalog
//
// # Lookup
//
// StringTable.Lookup is an equal-range binary search over the sorted
// resources: O(log n), allocation-free, safe for unlimited concurrent use
// because tables are frozen at construction.
package catalog
