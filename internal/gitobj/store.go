// Package gitobj reads loose objects from a Git object database and walks
// first-parent commit history between tags.
//
// Only loose, zlib-deflated objects and lightweight tags stored as loose ref
// files are supported. Packed objects, packed refs, and annotated tag
// dereferencing are out of scope. The store is never cached: every lookup
// re-reads from disk.
package gitobj

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ReadObject locates the loose object for the given hex id under
// <repoPath>/.git/objects/<2>/<38>, inflates it, and returns the contents
// as text.
//
// It returns ErrObjectNotFound when the object file does not exist and
// ErrObjectCorrupt when decompression or UTF-8 decoding fails; both are
// wrapped with the object id for diagnostics.
func ReadObject(repoPath, objectID string) (string, error) {
	if len(objectID) < 3 {
		return "", fmt.Errorf("object %q: %w", objectID, ErrObjectNotFound)
	}
	path := filepath.Join(repoPath, ".git", "objects", objectID[:2], objectID[2:])

	compressed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("object %s: %w", objectID, ErrObjectNotFound)
		}
		return "", fmt.Errorf("object %s: %w: %v", objectID, ErrObjectCorrupt, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("object %s: %w: %v", objectID, ErrObjectCorrupt, err)
	}
	defer zr.Close()

	inflated, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("object %s: %w: %v", objectID, ErrObjectCorrupt, err)
	}

	if !utf8.Valid(inflated) {
		return "", fmt.Errorf("object %s: %w: not valid UTF-8", objectID, ErrObjectCorrupt)
	}

	return string(inflated), nil
}
