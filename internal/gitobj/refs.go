package gitobj

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveTag maps a lightweight tag name to the commit id it points to by
// reading <repoPath>/.git/refs/tags/<tag> and trimming surrounding
// whitespace. It returns ErrTagNotFound when no such ref file exists.
func ResolveTag(repoPath, tag string) (string, error) {
	path := filepath.Join(repoPath, ".git", "refs", "tags", tag)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("tag %s: %w", tag, ErrTagNotFound)
		}
		return "", fmt.Errorf("tag %s: %w", tag, err)
	}

	return strings.TrimSpace(string(data)), nil
}
