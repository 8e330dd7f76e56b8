package gitobj

import "errors"

// Error kinds surfaced by the object store, decoder, and walker. All are
// non-retriable: the repository is treated as a static, read-only snapshot,
// so any failure aborts the operation that hit it.
var (
	// ErrObjectNotFound indicates the loose object file does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectCorrupt indicates the object file could not be inflated or
	// decoded as UTF-8 text.
	ErrObjectCorrupt = errors.New("object corrupt")

	// ErrMalformedCommit indicates a commit object is missing its author
	// line or carries an unparseable timestamp.
	ErrMalformedCommit = errors.New("malformed commit")

	// ErrTagNotFound indicates no loose ref file exists for the tag name.
	ErrTagNotFound = errors.New("tag not found")

	// ErrWalkLimit indicates a walk visited more commits than the
	// configured bound allows.
	ErrWalkLimit = errors.New("walk limit exceeded")
)
