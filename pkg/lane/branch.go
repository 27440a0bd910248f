package lane

// Branch is one continuous coloured lane run in the graph: an ordered list
// of line segments plus the row at which the branch's last activity
// occurred. The end row is consulted only for colour-reuse eligibility.
type Branch struct {
	colour         int
	end            int
	lines          []Line
	numUncommitted int
}

func newBranch(colour int) *Branch {
	return &Branch{colour: colour}
}

// AddLine appends a segment to the branch.
//
// Uncommitted lines (those drawn for the synthetic uncommitted-changes row)
// increment the provisional-line counter; a committed line landing at lane 0
// can only lower the counter toward its own row. The counter tracks how many
// trailing edges near the top of history are still provisional.
func (b *Branch) AddLine(p1, p2 Point, committed, lockedFirst bool) {
	b.lines = append(b.lines, Line{P1: p1, P2: p2, LockedFirst: lockedFirst})
	if committed {
		if p2.Lane == 0 && p2.Row < b.numUncommitted {
			b.numUncommitted = p2.Row
		}
	} else {
		b.numUncommitted++
	}
}

// Colour returns the branch's palette index (pre-modulo).
func (b *Branch) Colour() int { return b.colour }

// End returns the row marking where the branch's last activity occurred
// (exclusive).
func (b *Branch) End() int { return b.end }

// SetEnd records the branch's last-touched row.
func (b *Branch) SetEnd(end int) { b.end = end }

// Lines returns the branch's segments in append order. The returned slice
// is the branch's own storage and must not be modified.
func (b *Branch) Lines() []Line { return b.lines }
