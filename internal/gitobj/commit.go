package gitobj

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Commit is one decoded commit record. ID is the object id the caller
// supplied to decode it; the hash is never recomputed from the content,
// integrity is delegated to the store's hash-naming convention.
type Commit struct {
	ID      string
	Parent  string // empty for a root commit
	Author  string
	When    time.Time
	Message string
}

// IsRoot reports whether the commit has no parent.
func (c Commit) IsRoot() bool { return c.Parent == "" }

// DecodeCommit parses the inflated text of a commit object into a Commit.
//
// The text is a run of header lines, a blank line, then the free-form
// message (everything after the first blank line, verbatim). Unrecognized
// header lines, including the "<type> <size>\x00"-prefixed first line of a
// loose object, are skipped. For merge commits only the first "parent" line
// is kept (first-parent semantics).
//
// It returns ErrMalformedCommit when no "author" line is present or its
// timestamp token does not parse as an integer.
func DecodeCommit(id, raw string) (Commit, error) {
	commit := Commit{ID: id}

	var message []string
	inMessage := false
	haveAuthor := false

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case inMessage:
			message = append(message, line)
		case line == "":
			inMessage = true
		case strings.HasPrefix(line, "parent ") && commit.Parent == "":
			commit.Parent = strings.TrimSpace(strings.TrimPrefix(line, "parent "))
		case strings.HasPrefix(line, "author ") && !haveAuthor:
			author, when, err := parseAuthorLine(strings.TrimPrefix(line, "author "))
			if err != nil {
				return Commit{}, fmt.Errorf("commit %s: %w: %v", id, ErrMalformedCommit, err)
			}
			commit.Author = author
			commit.When = when
			haveAuthor = true
		}
	}

	if !haveAuthor {
		return Commit{}, fmt.Errorf("commit %s: %w: no author line", id, ErrMalformedCommit)
	}

	// Object text is newline-terminated; drop the resulting empty tail so
	// the message round-trips as written.
	if n := len(message); n > 0 && message[n-1] == "" {
		message = message[:n-1]
	}
	commit.Message = strings.Join(message, "\n")

	return commit, nil
}

// parseAuthorLine splits "<name> <email> <epoch> <tzoffset>" from the right:
// the last token is the timezone, the second-to-last is the epoch, and the
// name is everything before them (the email stays part of the name). A name
// whose own trailing token is numeric would be truncated; this matches the
// observed upstream behavior and is kept as-is.
func parseAuthorLine(rest string) (string, time.Time, error) {
	i := strings.LastIndexByte(rest, ' ')
	if i < 0 {
		return "", time.Time{}, fmt.Errorf("author line %q: missing timestamp", rest)
	}
	j := strings.LastIndexByte(rest[:i], ' ')
	if j < 0 {
		return "", time.Time{}, fmt.Errorf("author line %q: missing timestamp", rest)
	}

	epoch, err := strconv.ParseInt(rest[j+1:i], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("author timestamp %q: %v", rest[j+1:i], err)
	}

	return rest[:j], time.Unix(epoch, 0), nil
}
