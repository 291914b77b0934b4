package resolver

import "errors"

var (
	ErrNilBundle             = errors.New("resolver: catalog bundle is required")
	ErrUnknownIdentifier     = errors.New("resolver: identifier not declared by the primary catalog")
	ErrInvalidMaxPreferences = errors.New("resolver: max preferences must be positive")
)
