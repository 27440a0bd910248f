// Package gitlog loads a window of commit history from a local repository
// by shelling out to the git executable.
//
// # Overview
//
// The package produces a [History]: an ordered window of commits (newest
// first, date order), the HEAD hash, and the number of uncommitted changes
// in the working tree. A History converts into the row/parent form the
// layout engine consumes via [History.GraphInput].
//
// # Basic Usage
//
//	h, err := gitlog.Load(ctx, ".", gitlog.LoadOptions{Limit: 200})
//	if err != nil {
//	    return err
//	}
//	b := lane.New()
//	b.Load(h.GraphInput())
//
// # Error Handling
//
// All failures carry structured codes from pkg/errors: NOT_A_REPOSITORY
// when the directory is not inside a work tree, GIT_NOT_FOUND when the git
// executable is missing, GIT_ERROR for anything git itself reports.
//
// # Concurrency
//
// Load is safe for concurrent use; every call runs its own git processes
// under the supplied context.
package gitlog
