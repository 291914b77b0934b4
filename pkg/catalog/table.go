package catalog

import (
	"slices"
	"strings"
)

// StringResource is a single identifier/content pair owned by a StringTable.
type StringResource struct {
	// ID is the resource identifier, unique within its table.
	ID string

	// Content is the resource text exactly as declared in the catalog.
	Content string
}

// StringTable is an immutable, identifier-sorted set of string resources
// for one language. Tables are built by the catalog parser and never
// mutated afterwards, making them safe for concurrent use.
type StringTable struct {
	language  string
	resources []StringResource
}

// newStringTable sorts the resources by identifier and rejects duplicates.
// Duplicate identifiers are a format error rather than a silent
// keep-first/keep-last choice, so a broken catalog fails at load time.
func newStringTable(language string, resources []StringResource) (*StringTable, error) {
	slices.SortFunc(resources, func(a, b StringResource) int {
		return strings.Compare(a.ID, b.ID)
	})

	for i := 1; i < len(resources); i++ {
		if resources[i].ID == resources[i-1].ID {
			return nil, wrapResource(ErrDuplicateResource, resources[i].ID)
		}
	}

	return &StringTable{language: language, resources: resources}, nil
}

// Lookup returns the content for the given identifier.
// A false result is the normal negative outcome, not an error;
// fallback policy belongs to the resolver.
func (t *StringTable) Lookup(id string) (string, bool) {
	i, ok := slices.BinarySearchFunc(t.resources, id, func(r StringResource, id string) int {
		return strings.Compare(r.ID, id)
	})
	if !ok {
		return "", false
	}
	return t.resources[i].Content, true
}

// Language returns the language this table was built for.
func (t *StringTable) Language() string {
	return t.language
}

// Len returns the number of resources in the table.
func (t *StringTable) Len() int {
	return len(t.resources)
}

// IDs returns the identifiers in ascending order.
// The slice is a copy; the table itself stays frozen.
func (t *StringTable) IDs() []string {
	ids := make([]string, len(t.resources))
	for i, r := range t.resources {
		ids[i] = r.ID
	}
	return ids
}
