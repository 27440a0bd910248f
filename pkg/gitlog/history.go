package gitlog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/gitlane/pkg/errors"
	"github.com/matzehuels/gitlane/pkg/lane"
)

// DefaultLimit caps the history window when LoadOptions.Limit is zero.
const DefaultLimit = 300

// Record and field separators used in the git log pretty format. Control
// characters cannot appear in commit metadata, so splitting is unambiguous.
const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// logFormat emits one record per commit:
// hash, parent hashes, ref names, author, unix date, subject.
const logFormat = "%H%x1f%P%x1f%D%x1f%an%x1f%ad%x1f%s%x1e"

// Commit is a single commit in the history window.
type Commit struct {
	Hash    string
	Parents []string
	Refs    []string
	Author  string
	Date    time.Time
	Summary string
}

// History is a window of commit history, newest first.
type History struct {
	Commits     []Commit
	Head        string // HEAD commit hash, empty if unborn
	Uncommitted int    // staged + unstaged entries in the working tree
}

// LoadOptions controls how much history is read.
type LoadOptions struct {
	Limit int // maximum commits in the window; DefaultLimit if zero
}

// Load reads a window of commit history from the repository at dir.
func Load(ctx context.Context, dir string, opts LoadOptions) (*History, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	if _, err := outputGit(ctx, dir, "rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, err
	}

	h := &History{}

	out, err := outputGit(ctx, dir,
		"log", "--branches", "--remotes", "--date-order",
		"--date=unix", "-n", strconv.Itoa(limit),
		"--pretty=format:"+logFormat)
	switch {
	case err == nil:
		h.Commits, err = parseLog(out)
		if err != nil {
			return nil, err
		}
	case strings.Contains(err.Error(), "does not have any commits"):
		// Freshly initialized repository. Valid, just empty.
	default:
		return nil, err
	}

	if head, err := outputGit(ctx, dir, "rev-parse", "HEAD"); err == nil {
		h.Head = strings.TrimSpace(string(head))
	}

	status, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(status), "\n") {
		if strings.TrimSpace(line) != "" {
			h.Uncommitted++
		}
	}

	return h, nil
}

// parseLog splits the record-separated git log output into commits.
func parseLog(out []byte) ([]Commit, error) {
	var commits []Commit
	for _, record := range strings.Split(string(out), recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		fields := strings.Split(record, fieldSep)
		if len(fields) != 6 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"malformed log record: %d fields, want 6", len(fields))
		}

		c := Commit{
			Hash:    fields[0],
			Author:  fields[3],
			Summary: fields[5],
		}
		if fields[1] != "" {
			c.Parents = strings.Fields(fields[1])
		}
		if fields[2] != "" {
			for _, ref := range strings.Split(fields[2], ", ") {
				c.Refs = append(c.Refs, strings.TrimPrefix(ref, "HEAD -> "))
			}
		}
		if ts, err := strconv.ParseInt(fields[4], 10, 64); err == nil {
			c.Date = time.Unix(ts, 0)
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// ShortHash abbreviates a commit hash to the conventional 7 characters.
func ShortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// GraphInput converts the history window into the layout engine's input
// form. Parents outside the window map to [lane.NullID].
func (h *History) GraphInput() lane.Input {
	rowOf := make(map[string]int, len(h.Commits))
	for row, c := range h.Commits {
		rowOf[c.Hash] = row
	}

	parents := make([][]int, len(h.Commits))
	for row, c := range h.Commits {
		for _, p := range c.Parents {
			if pr, ok := rowOf[p]; ok {
				parents[row] = append(parents[row], pr)
			} else {
				parents[row] = append(parents[row], lane.NullID)
			}
		}
	}

	head := lane.NullID
	if r, ok := rowOf[h.Head]; ok {
		head = r
	}

	return lane.Input{
		Count:          len(h.Commits),
		Parents:        parents,
		Head:           head,
		HasUncommitted: h.Uncommitted > 0,
	}
}
