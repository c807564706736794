package nameparse

import "errors"

var (
	// ErrFirstNameNotFound reports that no token was left for the first
	// name. Suppressed by Config.OptionalFirstName.
	ErrFirstNameNotFound = errors.New("first name not found")
	// ErrLastNameNotFound reports that the last-name pattern did not
	// match. Suppressed by Config.OptionalLastName.
	ErrLastNameNotFound = errors.New("last name not found")
	// ErrAmbiguousMatch reports that a strip which must consume exactly
	// one occurrence found several. Always fatal.
	ErrAmbiguousMatch = errors.New("ambiguous match")
)
