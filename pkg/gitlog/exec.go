package gitlog

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/gitlane/pkg/errors"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit runs a git command under ctx and returns stdout. Failures are
// mapped to coded errors, with git's stderr folded into the message.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGitNotFound, err, "git executable not found in PATH")
	}

	cmd := exec.CommandContext(ctx, "git", gitArgs(dir, args)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		if strings.Contains(msg, "not a git repository") {
			return nil, errors.New(errors.ErrCodeNotARepo, "%s is not a git repository", displayDir(dir))
		}
		return nil, errors.New(errors.ErrCodeGit, "git %s: %s", args[0], msg)
	}
	return out, nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
