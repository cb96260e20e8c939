package classifier

import (
	"errors"
)

var (
	// ErrInconsistent means the mapping names a category that isn't in the
	// category list. Persisted state is never repaired automatically.
	ErrInconsistent = errors.New("category mapping inconsistent with categories")

	// ErrNotFound is returned for an unmapped business when prompting is off.
	ErrNotFound = errors.New("no category for business")

	// ErrUnresolved is returned when the resolver fails or gives no answer.
	ErrUnresolved = errors.New("business category unresolved")
)
