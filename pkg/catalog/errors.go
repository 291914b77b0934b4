package catalog

import "errors"

var (
	ErrInvalidCatalog             = errors.New("catalog: invalid catalog document")
	ErrMissingLanguage            = errors.New("catalog: primary catalog must declare a language")
	ErrUnexpectedTranslation      = errors.New("catalog: translation catalog cannot declare translations")
	ErrMissingTranslationLanguage = errors.New("catalog: translation declaration requires a language")
	ErrDuplicateTranslation       = errors.New("catalog: duplicate translation language")
	ErrEmptyResourceName          = errors.New("catalog: string resource requires a non-empty name")
	ErrDuplicateResource          = errors.New("catalog: duplicate string resource name")
	ErrUnknownResource            = errors.New("catalog: resource not declared by the primary catalog")
)
