package catalog

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle is the fully loaded catalog set: the primary catalog plus one
// string table per declared translation. The primary table is always
// Tables[0]; translation tables follow in declaration order.
type Bundle struct {
	Primary *Catalog
	Tables  []*StringTable
}

// Load reads the primary catalog at the given path and every translation
// it declares, resolving translation paths relative to the primary's
// directory. The decoder is chosen by file extension (.xml, .yaml, .yml),
// so catalogs can be kept in either format. Load works with any fs.FS,
// which makes embed.FS the natural build-integrated source.
//
// Any format error in any catalog aborts the whole load; there is no
// partially usable bundle.
func Load(fsys fs.FS, filePath string) (*Bundle, error) {
	primary, err := loadFile(fsys, filePath, func(r io.Reader) (*Catalog, error) {
		return parsePrimaryByExt(r, filePath)
	})
	if err != nil {
		return nil, err
	}

	dir := path.Dir(filePath)
	tables := make([]*StringTable, 0, len(primary.Translations)+1)
	tables = append(tables, primary.Table)

	for _, tr := range primary.Translations {
		trPath := path.Join(dir, tr.Path)
		cat, err := loadFile(fsys, trPath, func(r io.Reader) (*Catalog, error) {
			return parseTranslationByExt(r, tr.Path, tr.Language, primary.Table)
		})
		if err != nil {
			return nil, err
		}
		tables = append(tables, cat.Table)
	}

	return &Bundle{Primary: primary, Tables: tables}, nil
}

func loadFile(fsys fs.FS, filePath string, parse func(io.Reader) (*Catalog, error)) (*Catalog, error) {
	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %q: %w", filePath, err)
	}
	defer f.Close()

	cat, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parsing %q: %w", filePath, err)
	}
	return cat, nil
}

func parsePrimaryByExt(r io.Reader, filePath string) (*Catalog, error) {
	if isYAML(filePath) {
		return ParsePrimaryYAML(r)
	}
	return ParsePrimary(r)
}

func parseTranslationByExt(r io.Reader, filePath, language string, primary *StringTable) (*Catalog, error) {
	if isYAML(filePath) {
		return ParseTranslationYAML(r, language, primary)
	}
	return ParseTranslation(r, language, primary)
}

func isYAML(filePath string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	return ext == ".yaml" || ext == ".yml"
}

// ParsePrimaryYAML parses a primary catalog from its YAML form. The YAML
// shape mirrors the XML document: a top-level language, a translations
// list, and a strings mapping. Validation rules are identical.
func ParsePrimaryYAML(r io.Reader) (*Catalog, error) {
	doc, err := decodeYAML(r)
	if err != nil {
		return nil, err
	}
	return build(doc, "", nil)
}

// ParseTranslationYAML parses a translation catalog from its YAML form.
func ParseTranslationYAML(r io.Reader, language string, primary *StringTable) (*Catalog, error) {
	doc, err := decodeYAML(r)
	if err != nil {
		return nil, err
	}
	return build(doc, language, primary)
}

type yamlCatalog struct {
	Language     string            `yaml:"language"`
	Translations []yamlTranslation `yaml:"translations"`
	Strings      map[string]string `yaml:"strings"`
}

type yamlTranslation struct {
	Language string `yaml:"language"`
	Path     string `yaml:"path"`
}

func decodeYAML(r io.Reader) (*document, error) {
	var raw yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	doc := &document{language: strings.TrimSpace(raw.Language)}

	for _, tr := range raw.Translations {
		language := strings.TrimSpace(tr.Language)
		trPath := strings.TrimSpace(tr.Path)
		if trPath == "" && language != "" {
			trPath = "strings." + language + ".yaml"
		}
		doc.translations = append(doc.translations, Translation{Language: language, Path: trPath})
	}

	// Map iteration order is random; the table constructor sorts,
	// so only emptiness needs checking here.
	for name, content := range raw.Strings {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyResourceName
		}
		doc.resources = append(doc.resources, StringResource{ID: name, Content: content})
	}

	return doc, nil
}
