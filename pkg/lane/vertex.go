package lane

// noBranch marks a vertex not yet claimed by any branch.
const noBranch = -1

// Vertex is one commit's graph-local state: its DAG edges, lane assignment,
// reservation table, and a cursor over its not-yet-consumed parents.
//
// A vertex belongs to at most one branch; [Vertex.ClaimBranch] sets the
// membership exactly once and later claims are no-ops.
type Vertex struct {
	id       int
	lane     int
	nextLane int
	children []int
	parents  []int // input order, may contain NullID
	cursor   int   // index of the next unconsumed parent
	branch   int   // noBranch until claimed

	isCommitted  bool
	isCurrent    bool
	reservations []Reservation // indexed by lane, grows contiguously
}

func newVertex(id int) *Vertex {
	return &Vertex{id: id, branch: noBranch, isCommitted: true}
}

// AddParent appends a parent edge. Parents keep their input order;
// out-of-window ancestors are recorded as NullID.
func (v *Vertex) AddParent(id int) { v.parents = append(v.parents, id) }

// AddChild appends a child edge.
func (v *Vertex) AddChild(id int) { v.children = append(v.children, id) }

// NextParent peeks the next unconsumed parent without consuming it.
// The second result is false once every parent has been consumed.
func (v *Vertex) NextParent() (int, bool) {
	if v.cursor < len(v.parents) {
		return v.parents[v.cursor], true
	}
	return NullID, false
}

// AdvanceParent consumes the current parent. Each parent is consumed at
// most once, in order.
func (v *Vertex) AdvanceParent() { v.cursor++ }

// IsMerge reports whether the vertex has more than one parent.
func (v *Vertex) IsMerge() bool { return len(v.parents) > 1 }

// OnBranch returns the branch index the vertex was claimed by, if any.
func (v *Vertex) OnBranch() (int, bool) { return v.branch, v.branch != noBranch }

// ClaimBranch attaches the vertex to a branch at the given lane. The first
// claim wins; subsequent calls are no-ops.
func (v *Vertex) ClaimBranch(branch, lane int) {
	if v.branch == noBranch {
		v.branch = branch
		v.lane = lane
	}
}

// CurrentPoint returns the vertex's assigned position.
func (v *Vertex) CurrentPoint() Point { return Point{Lane: v.lane, Row: v.id} }

// NextPoint returns where a new line through this row would land, without
// committing it: the vertex's next free lane.
func (v *Vertex) NextPoint() Point { return Point{Lane: v.nextLane, Row: v.id} }

// FindReservation scans the reservation table for a lane already routing
// toward the given vertex on the given branch. It is used to detect where
// a merge-stitch line can terminate.
func (v *Vertex) FindReservation(vertexID, branch int) (Point, bool) {
	for lane, r := range v.reservations {
		if r.ConnectsTo == vertexID && r.OnBranch == branch {
			return Point{Lane: lane, Row: v.id}, true
		}
	}
	return Point{}, false
}

// Reserve commits a reservation at the given lane. The reservation is only
// accepted when lane equals the vertex's next free lane; otherwise another
// line already owns that slot at this row and the call is a no-op. This
// keeps the table contiguous and collision-free.
func (v *Vertex) Reserve(lane, connectsTo, branch int) {
	if lane != v.nextLane {
		return
	}
	v.nextLane = lane + 1
	for len(v.reservations) <= lane {
		v.reservations = append(v.reservations, Reservation{ConnectsTo: NullID})
	}
	v.reservations[lane] = Reservation{ConnectsTo: connectsTo, OnBranch: branch}
}
