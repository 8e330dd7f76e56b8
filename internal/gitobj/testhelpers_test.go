package gitobj

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// writeLooseObject stores content as a zlib-deflated loose object under
// <repoPath>/.git/objects/<2>/<38>.
func writeLooseObject(t *testing.T, repoPath, objectID, content string) {
	t.Helper()

	dir := filepath.Join(repoPath, ".git", "objects", objectID[:2])
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create object dir: %v", err)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to compress object: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close compressor: %v", err)
	}

	path := filepath.Join(dir, objectID[2:])
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write object file: %v", err)
	}
}

// writeTagRef stores a lightweight tag as a loose ref file.
func writeTagRef(t *testing.T, repoPath, tag, commitID string) {
	t.Helper()

	dir := filepath.Join(repoPath, ".git", "refs", "tags")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create refs dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, tag), []byte(commitID+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write tag ref: %v", err)
	}
}

// commitText builds the text of a commit object the way git serializes it,
// minus the "commit <size>\x00" header (the decoder skips it either way).
func commitText(parent string, epoch int64, message string) string {
	var b strings.Builder
	b.WriteString("tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n")
	if parent != "" {
		fmt.Fprintf(&b, "parent %s\n", parent)
	}
	fmt.Fprintf(&b, "author Test Author <test@example.com> %d +0000\n", epoch)
	fmt.Fprintf(&b, "committer Test Author <test@example.com> %d +0000\n", epoch)
	b.WriteString("\n")
	b.WriteString(message)
	b.WriteString("\n")
	return b.String()
}

// fakeID returns a 40-character hex id built from a single repeated digit.
func fakeID(c byte) string {
	return strings.Repeat(string(c), 40)
}

// createTestRepo initializes a real repository in a temp dir via go-git.
// Commits and lightweight tags land in the loose object store, which is
// exactly what the reader under test consumes.
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
