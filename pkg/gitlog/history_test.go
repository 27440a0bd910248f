package gitlog

import (
	"strings"
	"testing"

	"github.com/matzehuels/gitlane/pkg/errors"
	"github.com/matzehuels/gitlane/pkg/lane"
)

// record builds one log record in the wire format used by parseLog.
func record(hash, parents, refs, author, date, subject string) string {
	return strings.Join([]string{hash, parents, refs, author, date, subject}, fieldSep) + recordSep
}

func TestParseLog(t *testing.T) {
	out := record("aaa1", "bbb2 ccc3", "HEAD -> main, origin/main", "Alice", "1755900000", "Merge feature") +
		"\n" + record("bbb2", "ddd4", "", "Bob", "1755890000", "Add parser") +
		"\n" + record("ccc3", "", "tag: v1.0.0", "Alice", "1755880000", "Initial commit")

	commits, err := parseLog([]byte(out))
	if err != nil {
		t.Fatalf("parseLog() error = %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("parseLog() = %d commits, want 3", len(commits))
	}

	merge := commits[0]
	if merge.Hash != "aaa1" {
		t.Errorf("Hash = %q, want aaa1", merge.Hash)
	}
	if len(merge.Parents) != 2 || merge.Parents[0] != "bbb2" || merge.Parents[1] != "ccc3" {
		t.Errorf("Parents = %v, want [bbb2 ccc3]", merge.Parents)
	}
	if len(merge.Refs) != 2 || merge.Refs[0] != "main" || merge.Refs[1] != "origin/main" {
		t.Errorf("Refs = %v, want [main origin/main]", merge.Refs)
	}
	if merge.Author != "Alice" || merge.Summary != "Merge feature" {
		t.Errorf("Author/Summary = %q/%q", merge.Author, merge.Summary)
	}
	if merge.Date.Unix() != 1755900000 {
		t.Errorf("Date = %v, want unix 1755900000", merge.Date)
	}

	root := commits[2]
	if len(root.Parents) != 0 {
		t.Errorf("root Parents = %v, want empty", root.Parents)
	}
	if len(root.Refs) != 1 || root.Refs[0] != "tag: v1.0.0" {
		t.Errorf("root Refs = %v, want [tag: v1.0.0]", root.Refs)
	}
}

func TestParseLogEmpty(t *testing.T) {
	commits, err := parseLog(nil)
	if err != nil {
		t.Fatalf("parseLog(nil) error = %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("parseLog(nil) = %d commits, want 0", len(commits))
	}
}

func TestParseLogMalformed(t *testing.T) {
	_, err := parseLog([]byte("only\x1ftwo" + recordSep))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("parseLog() error = %v, want INVALID_FORMAT", err)
	}
}

func TestGraphInput(t *testing.T) {
	h := &History{
		Commits: []Commit{
			{Hash: "a", Parents: []string{"b", "c"}},
			{Hash: "b", Parents: []string{"d"}},
			{Hash: "c", Parents: []string{"d"}},
			{Hash: "d", Parents: []string{"outside"}},
		},
		Head: "a",
	}

	in := h.GraphInput()
	if in.Count != 4 {
		t.Errorf("Count = %d, want 4", in.Count)
	}
	if in.Head != 0 {
		t.Errorf("Head = %d, want 0", in.Head)
	}
	if in.HasUncommitted {
		t.Error("HasUncommitted = true, want false")
	}

	want := [][]int{{1, 2}, {3}, {3}, {lane.NullID}}
	for row, parents := range want {
		if len(in.Parents[row]) != len(parents) {
			t.Fatalf("Parents[%d] = %v, want %v", row, in.Parents[row], parents)
		}
		for i, p := range parents {
			if in.Parents[row][i] != p {
				t.Errorf("Parents[%d][%d] = %d, want %d", row, i, in.Parents[row][i], p)
			}
		}
	}
}

func TestGraphInputHeadOutsideWindow(t *testing.T) {
	h := &History{
		Commits:     []Commit{{Hash: "a"}},
		Head:        "zzz",
		Uncommitted: 3,
	}

	in := h.GraphInput()
	if in.Head != lane.NullID {
		t.Errorf("Head = %d, want NullID", in.Head)
	}
	if !in.HasUncommitted {
		t.Error("HasUncommitted = false, want true")
	}
}

func TestShortHash(t *testing.T) {
	if got := ShortHash("aaaa111122223333"); got != "aaaa111" {
		t.Errorf("ShortHash() = %q, want aaaa111", got)
	}
	if got := ShortHash("ab"); got != "ab" {
		t.Errorf("ShortHash() = %q, want ab", got)
	}
}

func TestGitArgs(t *testing.T) {
	if got := gitArgs("", []string{"log"}); len(got) != 1 || got[0] != "log" {
		t.Errorf("gitArgs(\"\") = %v, want [log]", got)
	}
	got := gitArgs("/repo", []string{"log"})
	if len(got) != 3 || got[0] != "-C" || got[1] != "/repo" || got[2] != "log" {
		t.Errorf("gitArgs(/repo) = %v, want [-C /repo log]", got)
	}
}
