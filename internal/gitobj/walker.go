package gitobj

import (
	"fmt"
	"time"
)

// Walk follows the first-parent chain from startID and returns the commits
// authored at or after minDate, oldest first.
//
// The date filter controls inclusion only: traversal continues past commits
// older than minDate all the way to the root or to boundaryID, so the
// result can be non-contiguous in date. boundaryID (the previous tag's
// commit, or empty for none) is itself excluded from the result.
//
// maxCommits bounds the number of commits visited; 0 means unbounded.
// Exceeding the bound fails the walk with ErrWalkLimit rather than
// truncating, keeping the all-or-nothing contract. Store and decoder
// failures propagate unchanged.
func Walk(repoPath, startID string, minDate time.Time, boundaryID string, maxCommits int) ([]Commit, error) {
	var commits []Commit // accumulated newest first
	visited := 0

	for current := startID; current != ""; {
		if maxCommits > 0 && visited >= maxCommits {
			return nil, fmt.Errorf("walk from %s: %w after %d commits", startID, ErrWalkLimit, visited)
		}
		visited++

		raw, err := ReadObject(repoPath, current)
		if err != nil {
			return nil, err
		}
		commit, err := DecodeCommit(current, raw)
		if err != nil {
			return nil, err
		}

		if !commit.When.Before(minDate) {
			commits = append(commits, commit)
		}

		if commit.IsRoot() || commit.Parent == boundaryID {
			break
		}
		current = commit.Parent
	}

	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	return commits, nil
}
