package lane

// Input is one immutable history snapshot.
//
// Rows are dense integers 0..Count-1, already sorted into combined
// recency+topological order by the history source; the engine never
// reorders them. Parents[row] lists that row's parents in input order,
// each entry either a valid row index or [NullID] for an ancestor outside
// the window. Out-of-range entries are tolerated and treated like NullID.
type Input struct {
	Count   int
	Parents [][]int

	// Head is the row of the checked-out commit. Note the zero value names
	// row 0, a valid row; callers without a known head must pass NullID,
	// which suppresses head marking entirely.
	Head int

	// HasUncommitted injects a synthetic "uncommitted changes" row ahead of
	// all real rows; every other row and parent reference shifts by +1.
	HasUncommitted bool
}

// Builder owns the full vertex/branch/palette state for one loaded
// snapshot and answers per-row layout queries. The zero value is not
// usable; create instances with [New].
type Builder struct {
	vertices   []*Vertex
	branches   []*Branch
	colourEnds []int // per palette slot, the last-used end row
}

// New creates an empty Builder. Call [Builder.Load] before querying rows.
func New() *Builder {
	return &Builder{}
}

// RowCount returns the number of loaded rows, including the synthetic
// uncommitted-changes row when present.
func (b *Builder) RowCount() int { return len(b.vertices) }

// Load rebuilds the graph from the given snapshot. All prior vertex,
// branch, and palette state is discarded first, so the result depends
// solely on in.
func (b *Builder) Load(in Input) {
	b.vertices = b.vertices[:0]
	b.branches = b.branches[:0]
	b.colourEnds = b.colourEnds[:0]

	if in.Count < 0 {
		return
	}
	offset := 0
	if in.HasUncommitted {
		offset = 1
	}
	total := in.Count + offset
	if total == 0 {
		return
	}

	for i := 0; i < total; i++ {
		b.vertices = append(b.vertices, newVertex(i))
	}

	for row := 0; row < in.Count && row < len(in.Parents); row++ {
		for _, p := range in.Parents[row] {
			if p >= 0 && p < in.Count {
				b.vertices[row+offset].AddParent(p + offset)
				b.vertices[p+offset].AddChild(row + offset)
			} else {
				// Out of range behaves like an ancestor beyond the window.
				b.vertices[row+offset].AddParent(NullID)
			}
		}
	}

	if in.HasUncommitted {
		b.vertices[0].isCommitted = false
	}
	if in.Head != NullID && in.Head >= 0 && in.Head+offset < total {
		b.vertices[in.Head+offset].isCurrent = true
	}

	// Scan rows in order; a row needs another pass while it still has an
	// unconsumed parent or no branch. determinePath always consumes a
	// parent or claims a branch, so the loop terminates.
	for i := 0; i < len(b.vertices); {
		v := b.vertices[i]
		if _, pending := v.NextParent(); pending || v.branch == noBranch {
			b.determinePath(i)
		} else {
			i++
		}
	}
}

// determinePath resolves the next pending edge (or branch membership) of
// the vertex at startAt. Merge commits whose next parent already sits on
// another branch get a stitch line onto that branch; everything else
// extends or starts a branch of its own.
func (b *Builder) determinePath(startAt int) {
	v := b.vertices[startAt]

	last := v.NextPoint()
	if v.branch != noBranch {
		last = v.CurrentPoint()
	}

	parent, ok := v.NextParent()
	if ok && parent != NullID && parent >= 0 && parent < len(b.vertices) &&
		v.IsMerge() && v.branch != noBranch && b.vertices[parent].branch != noBranch {
		b.stitchMerge(startAt, parent, last)
		return
	}
	b.extendBranch(startAt, last)
}

// stitchMerge walks forward on the parent's branch, drawing a connector
// from the merge commit at startAt to the lane already used by the parent.
// At each row it prefers an existing reservation toward (parent, branch);
// otherwise it takes the row's next free lane as an intermediate waypoint.
// The walk stops at the destination reservation, and never overshoots the
// parent's own row.
func (b *Builder) stitchMerge(startAt, parent int, last Point) {
	parentBranch := b.vertices[parent].branch
	committed := b.vertices[startAt].isCommitted
	found := false

	for i := startAt + 1; i < len(b.vertices); i++ {
		cur, ok := b.vertices[i].FindReservation(parent, parentBranch)
		switch {
		case ok:
			found = true
		case i == parent:
			// Reached the parent without a matching reservation; terminate
			// on its assigned lane rather than walking past it.
			cur = b.vertices[i].CurrentPoint()
			found = true
		default:
			cur = b.vertices[i].NextPoint()
		}

		lockedFirst := !found && last.Lane < cur.Lane
		b.branches[parentBranch].AddLine(last, cur, committed, lockedFirst)
		b.vertices[i].Reserve(cur.Lane, parent, parentBranch)
		last = cur

		if found {
			b.vertices[startAt].AdvanceParent()
			return
		}
	}

	// Malformed input (parent ordered above its child): consume the edge so
	// the main loop cannot spin on it.
	b.vertices[startAt].AdvanceParent()
}

// extendBranch starts a new branch at startAt (allocating a colour) or
// continues an unterminated one, walking forward row by row until the
// branch terminates.
func (b *Builder) extendBranch(startAt int, last Point) {
	colour := b.availableColour(startAt)
	branchIdx := len(b.branches)
	b.branches = append(b.branches, newBranch(colour))

	start := b.vertices[startAt]
	start.ClaimBranch(branchIdx, last.Lane)
	start.Reserve(last.Lane, start.id, branchIdx)

	vertexIdx := startAt
	i := startAt + 1

	for i < len(b.vertices) {
		parent, ok := b.vertices[vertexIdx].NextParent()
		if !ok {
			break
		}

		target := b.vertices[i]
		var cur Point
		if parent == i && target.branch != noBranch {
			// Merge target: land on the parent's assigned lane.
			cur = target.CurrentPoint()
		} else {
			cur = target.NextPoint()
		}

		committed := b.vertices[vertexIdx].isCommitted
		b.branches[branchIdx].AddLine(last, cur, committed, last.Lane < cur.Lane)
		target.Reserve(cur.Lane, parent, branchIdx)
		last = cur

		if parent == i {
			b.vertices[vertexIdx].AdvanceParent()
			alreadyClaimed := target.branch != noBranch
			target.ClaimBranch(branchIdx, cur.Lane)
			vertexIdx = i

			_, pending := target.NextParent()
			if !pending || alreadyClaimed {
				break
			}
		}
		i++
	}

	// The walk exhausted the window with a parent still unconsumed: either
	// the NULL sentinel or a malformed reference pointing at the tracked
	// row itself or above it, which the forward walk can never reach.
	// Consume it so the main loop cannot spin on it; the line simply ends
	// at the window boundary.
	if i == len(b.vertices) {
		if _, ok := b.vertices[vertexIdx].NextParent(); ok {
			b.vertices[vertexIdx].AdvanceParent()
		}
	}

	b.branches[branchIdx].SetEnd(i)
	b.colourEnds[colour] = i
}

// availableColour picks the lowest-indexed palette slot whose previous
// occupant terminated strictly above startAt, appending a new slot when
// none qualifies. This bounds simultaneous colours to the maximum
// concurrent branch count while keeping colour identity stable across a
// branch's full length.
func (b *Builder) availableColour(startAt int) int {
	for i, end := range b.colourEnds {
		if startAt > end {
			return i
		}
	}
	b.colourEnds = append(b.colourEnds, 0)
	return len(b.colourEnds) - 1
}

// =============================================================================
// Per-row queries
// =============================================================================

// Lane returns the column assigned to the given row, or 0 for rows outside
// the loaded window.
func (b *Builder) Lane(row int) int {
	if row < 0 || row >= len(b.vertices) {
		return 0
	}
	return b.vertices[row].lane
}

// Colour returns the palette index (pre-modulo) of the branch owning the
// given row, or 0 when the row is outside the window or unclaimed.
func (b *Builder) Colour(row int) int {
	if row < 0 || row >= len(b.vertices) {
		return 0
	}
	if idx, ok := b.vertices[row].OnBranch(); ok && idx < len(b.branches) {
		return b.branches[idx].Colour()
	}
	return 0
}

// IsMerge reports whether the row is a merge commit (more than one parent).
func (b *Builder) IsMerge(row int) bool {
	if row < 0 || row >= len(b.vertices) {
		return false
	}
	return b.vertices[row].IsMerge()
}

// IsHead reports whether the row is the checked-out commit.
func (b *Builder) IsHead(row int) bool {
	if row < 0 || row >= len(b.vertices) {
		return false
	}
	return b.vertices[row].isCurrent
}

// IsUncommitted reports whether the row is the synthetic uncommitted-changes
// row.
func (b *Builder) IsUncommitted(row int) bool {
	if row < 0 || row >= len(b.vertices) {
		return false
	}
	return !b.vertices[row].isCommitted
}

// Branches returns the number of graph-branches created by the last Load.
func (b *Builder) Branches() int { return len(b.branches) }

// Branch returns the branch at the given index for inspection, or nil when
// out of range.
func (b *Builder) Branch(idx int) *Branch {
	if idx < 0 || idx >= len(b.branches) {
		return nil
	}
	return b.branches[idx]
}
