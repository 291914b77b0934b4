// Package codegen renders the statically-checked accessor facade for a
// loaded catalog bundle: one exported constant per string identifier,
// plus helpers to validate the whole set once at startup. The facade is
// a thin layer over resolver.T/resolver.Has; it carries no lookup logic
// of its own.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/dmitrymomot/lexicat/pkg/catalog"
)

var (
	ErrEmptyPackage       = errors.New("codegen: package name is required")
	ErrIdentifierClash    = errors.New("codegen: identifiers map to the same constant name")
	ErrUnusableIdentifier = errors.New("codegen: identifier cannot form a Go constant name")
)

type entry struct {
	Const string
	ID    string
}

var fileTemplate = template.Must(template.New("accessors").Parse(`// Code generated by lexigen. DO NOT EDIT.

package {{.Package}}

import "fmt"

// Identifiers declared by the primary catalog ({{.Language}}).
const (
{{- range .Entries}}
	{{.Const}} = {{printf "%q" .ID}}
{{- end}}
)

// Keys returns every declared identifier in ascending order.
func Keys() []string {
	return []string{
{{- range .Entries}}
		{{printf "%q" .ID}},
{{- end}}
	}
}

// Validate checks each identifier against the given predicate, typically
// resolver.Has, so identifier validity is verified once at startup
// instead of per call.
func Validate(has func(string) bool) error {
	for _, key := range Keys() {
		if !has(key) {
			return fmt.Errorf("unknown string identifier %q", key)
		}
	}
	return nil
}
`))

// Generate renders the accessor source file for the bundle's primary
// catalog. Every identifier becomes an exported constant; identifiers
// that collide after name mangling, or that contain no usable
// characters, fail generation.
func Generate(bundle *catalog.Bundle, pkgName string) ([]byte, error) {
	if pkgName == "" {
		return nil, ErrEmptyPackage
	}

	ids := bundle.Primary.Table.IDs()
	entries := make([]entry, 0, len(ids))
	used := make(map[string]string, len(ids))

	for _, id := range ids {
		name, err := constName(id)
		if err != nil {
			return nil, err
		}
		if prev, clash := used[name]; clash {
			return nil, fmt.Errorf("%w: %q and %q both yield %s", ErrIdentifierClash, prev, id, name)
		}
		used[name] = id
		entries = append(entries, entry{Const: name, ID: id})
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package  string
		Language string
		Entries  []entry
	}{
		Package:  pkgName,
		Language: bundle.Primary.Language,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("codegen: rendering: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting: %w", err)
	}
	return src, nil
}

// constName converts an identifier like "app.title_short" into an
// exported PascalCase constant name, "AppTitleShort". A leading digit
// gets an "ID" prefix to stay a valid Go identifier.
func constName(id string) (string, error) {
	var b strings.Builder
	upperNext := true

	for _, r := range id {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if b.Len() == 0 {
				b.WriteString("ID")
			}
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnusableIdentifier, id)
	}
	return b.String(), nil
}
