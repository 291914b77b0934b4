package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Translation describes one translation catalog declared by a primary catalog.
type Translation struct {
	// Language is the translation's language code.
	Language string

	// Path is the catalog location relative to the primary catalog's
	// directory. Defaults to "strings.<language>.xml" when the
	// declaration carries no explicit path.
	Path string
}

// Catalog is one validated catalog document: the primary catalog carries
// the full identifier set plus its translation declarations, a translation
// catalog carries a per-language override table. Catalogs are immutable
// after parsing.
type Catalog struct {
	// Language is the catalog's language: the root declaration for a
	// primary catalog, the caller-supplied expectation otherwise.
	Language string

	// Translations holds the declared translations. Only a primary
	// catalog may declare any.
	Translations []Translation

	// Table is the identifier-sorted resource table.
	Table *StringTable
}

// ParsePrimary parses and validates a primary catalog document.
// The document must declare a language on its root element; the returned
// catalog enumerates every valid identifier and the declared translations.
func ParsePrimary(r io.Reader) (*Catalog, error) {
	doc, err := decodeXML(r)
	if err != nil {
		return nil, err
	}
	return build(doc, "", nil)
}

// ParseTranslation parses and validates a translation catalog document
// for the given language. Every resource must already be declared by the
// primary table, and the document may not declare further translations.
func ParseTranslation(r io.Reader, language string, primary *StringTable) (*Catalog, error) {
	doc, err := decodeXML(r)
	if err != nil {
		return nil, err
	}
	return build(doc, language, primary)
}

// document is the format-neutral shape shared by the XML and YAML decoders.
type document struct {
	language     string
	translations []Translation
	resources    []StringResource
}

// build validates a decoded document and assembles the Catalog.
// expectedLanguage empty means primary mode: the root declaration is
// required and translation declarations are allowed. Otherwise the
// document is a translation: declarations are rejected, the root language
// is ignored, and every identifier must exist in the parent table.
func build(doc *document, expectedLanguage string, parent *StringTable) (*Catalog, error) {
	language := expectedLanguage
	if expectedLanguage == "" {
		if doc.language == "" {
			return nil, ErrMissingLanguage
		}
		language = doc.language
	} else if len(doc.translations) > 0 {
		return nil, fmt.Errorf("%w: language %q", ErrUnexpectedTranslation, expectedLanguage)
	}

	translations := make([]Translation, 0, len(doc.translations))
	seen := make(map[string]bool, len(doc.translations))
	for _, tr := range doc.translations {
		if tr.Language == "" {
			return nil, ErrMissingTranslationLanguage
		}
		if seen[tr.Language] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTranslation, tr.Language)
		}
		seen[tr.Language] = true

		if tr.Path == "" {
			tr.Path = "strings." + tr.Language + ".xml"
		}
		translations = append(translations, tr)
	}

	if parent != nil {
		for _, res := range doc.resources {
			if _, ok := parent.Lookup(res.ID); !ok {
				return nil, wrapResource(ErrUnknownResource, res.ID)
			}
		}
	}

	table, err := newStringTable(language, doc.resources)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Language:     language,
		Translations: translations,
		Table:        table,
	}, nil
}

// xmlCatalog mirrors the on-disk document shape: a single <resources>
// root with <translation> and <string> children.
type xmlCatalog struct {
	XMLName      xml.Name         `xml:"resources"`
	Language     string           `xml:"language,attr"`
	Translations []xmlTranslation `xml:"translation"`
	Strings      []xmlString      `xml:"string"`
}

type xmlTranslation struct {
	Language string `xml:"language,attr"`
	Path     string `xml:",chardata"`
}

type xmlString struct {
	Name    string `xml:"name,attr"`
	Content string `xml:",chardata"`
}

func decodeXML(r io.Reader) (*document, error) {
	dec := xml.NewDecoder(r)

	var raw xmlCatalog
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing root element", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	// Decode stops after the first root element; anything but trailing
	// whitespace or comments means a second root.
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, ok := tok.(xml.StartElement); ok {
			return nil, fmt.Errorf("%w: duplicated root element", ErrInvalidCatalog)
		}
	}

	doc := &document{language: strings.TrimSpace(raw.Language)}

	for _, tr := range raw.Translations {
		doc.translations = append(doc.translations, Translation{
			Language: strings.TrimSpace(tr.Language),
			Path:     strings.TrimSpace(tr.Path),
		})
	}

	for _, s := range raw.Strings {
		if strings.TrimSpace(s.Name) == "" {
			return nil, ErrEmptyResourceName
		}
		doc.resources = append(doc.resources, StringResource{ID: s.Name, Content: s.Content})
	}

	return doc, nil
}

func wrapResource(err error, id string) error {
	return fmt.Errorf("%w: %q", err, id)
}
