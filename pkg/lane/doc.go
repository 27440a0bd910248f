// Package lane turns a partially-ordered commit history into a deterministic
// 2D lane graph: lane (column) assignment, colour assignment, and per-row
// connector geometry in the style of graphical history viewers.
//
// # Overview
//
// The input is a window of commits in recency order (row 0 = most recent),
// each with an ordered parent list. Parents outside the window are marked
// with [NullID]. The [Builder] assigns every commit a lane and a colour,
// stitches merge commits back onto the lane of their non-primary parents,
// and produces per-row SVG path fragments that compose into continuous
// curves across adjacent rows.
//
// # Basic Usage
//
// Create a [Builder], load an [Input] snapshot, then query rows:
//
//	b := lane.New()
//	b.Load(lane.Input{
//	    Count:   3,
//	    Parents: [][]int{{1}, {2}, {lane.NullID}},
//	    Head:    0,
//	})
//	col := b.Lane(0)
//	geo := b.RowPaths(0, lane.DefaultMetrics())
//
// Load fully rebuilds internal state, so a Builder can be reused across
// snapshots; the output depends only on the most recent Load.
//
// # Lanes, Branches and Reservations
//
// A graph-branch (distinct from a git branch ref) is one contiguous coloured
// run of lanes. Each vertex belongs to exactly one branch, claimed once and
// never reassigned. Lane collisions are prevented by per-vertex reservation
// tables that grow contiguously: a lane at a given row can only be reserved
// when it equals that vertex's next free lane, which rules out retroactive
// collisions from out-of-order registration.
//
// Colours are palette indices. A colour is reused by a new branch only once
// its previous occupant terminated strictly above the new branch's start
// row, so no two live branches ever share a colour.
//
// # Error Handling
//
// The algorithm has no fallible operations. Malformed input (out-of-range
// parent rows, queries for missing rows) degrades to the window-boundary
// case or to safe defaults rather than failing: a visually degraded graph
// is always preferable to halting.
//
// # Concurrency
//
// Builder instances are not safe for concurrent use. The computation is
// single-threaded and synchronous; callers that want to keep a front-end
// responsive can run Load on a worker goroutine, but the package itself
// never blocks, suspends, or spawns goroutines.
package lane
