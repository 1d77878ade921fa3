package algolia

import "errors"

// Validation errors, raised locally before any network activity.
// Use errors.Is() to check.
var (
	// ErrEmptyObjectID rejects operations addressing an object by an empty
	// identifier, which would otherwise hit the wrong endpoint.
	ErrEmptyObjectID = errors.New("objectID cannot be empty")

	// ErrMissingObjectID rejects save-style operations on objects that carry
	// no objectID attribute; the server cannot address them.
	ErrMissingObjectID = errors.New("object is missing an objectID attribute")

	// ErrEmptyIndexName rejects operations on an unnamed index.
	ErrEmptyIndexName = errors.New("index name cannot be empty")

	// ErrEmptyTaskID rejects task status checks without an identifier.
	ErrEmptyTaskID = errors.New("task id cannot be empty")
)
