package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository with loose objects.
func createTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	return tmpDir, repo
}

// addCommitToRepo adds a commit touching one file and returns its hash.
func addCommitToRepo(t *testing.T, repo *git.Repository, message, filename string, commitTime time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	content := fmt.Sprintf("Content for %s at %s\n", filename, commitTime.String())
	path := filepath.Join(w.Filesystem.Root(), filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := w.Add(filename); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  commitTime,
		},
		Committer: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  commitTime,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return hash.String()
}

// tagCommit creates a lightweight tag pointing at the given commit.
func tagCommit(t *testing.T, repo *git.Repository, name, hash string) {
	t.Helper()

	if _, err := repo.CreateTag(name, plumbing.NewHash(hash), nil); err != nil {
		t.Fatalf("Failed to create tag %s: %v", name, err)
	}
}
