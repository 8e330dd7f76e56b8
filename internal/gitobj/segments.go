package gitobj

import "time"

// TagSegment is the ordered run of commits attributed to one tag, bounded
// below by the previous tag's commit and filtered by a minimum date.
// Commits are ordered oldest to newest by traversal order; an out-of-order
// history graph is not re-sorted.
type TagSegment struct {
	Tag     string
	Commits []Commit
}

// BuildSegments resolves each tag name to a commit id and walks the history
// between it and the previous tag's commit, keyed by tag name.
//
// Tags are processed strictly in the order supplied: each walk is bounded
// by the immediately preceding tag's resolved commit (and only by that one
// commit, so divergent tag lists can repeat a commit across segments). A
// caller passing tags in non-chronological order gets segments that do not
// correspond to true chronological ranges.
//
// Any resolve or walk failure aborts the whole operation; no partial
// mapping is returned.
func BuildSegments(repoPath string, tagNames []string, minDate time.Time, maxCommits int) (map[string]TagSegment, error) {
	segments := make(map[string]TagSegment, len(tagNames))
	previous := ""

	for _, tag := range tagNames {
		commitID, err := ResolveTag(repoPath, tag)
		if err != nil {
			return nil, err
		}

		commits, err := Walk(repoPath, commitID, minDate, previous, maxCommits)
		if err != nil {
			return nil, err
		}

		segments[tag] = TagSegment{Tag: tag, Commits: commits}
		previous = commitID
	}

	return segments, nil
}
