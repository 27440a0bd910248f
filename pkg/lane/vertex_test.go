package lane

import "testing"

func TestVertexParentCursor(t *testing.T) {
	v := newVertex(0)
	v.AddParent(3)
	v.AddParent(NullID)

	if p, ok := v.NextParent(); !ok || p != 3 {
		t.Fatalf("NextParent() = %d, %v; want 3, true", p, ok)
	}
	// Peeking must not consume.
	if p, _ := v.NextParent(); p != 3 {
		t.Fatalf("NextParent() consumed the parent")
	}

	v.AdvanceParent()
	if p, ok := v.NextParent(); !ok || p != NullID {
		t.Fatalf("NextParent() = %d, %v; want NullID, true", p, ok)
	}

	v.AdvanceParent()
	if _, ok := v.NextParent(); ok {
		t.Fatal("NextParent() = true after all parents consumed")
	}
}

func TestVertexClaimOnce(t *testing.T) {
	v := newVertex(2)
	v.ClaimBranch(1, 3)
	v.ClaimBranch(7, 9) // must be a no-op

	if v.branch != 1 {
		t.Errorf("branch = %d, want 1", v.branch)
	}
	if got := v.CurrentPoint(); got != (Point{Lane: 3, Row: 2}) {
		t.Errorf("CurrentPoint() = %+v, want {3 2}", got)
	}
}

func TestVertexReserve(t *testing.T) {
	tests := []struct {
		name     string
		lanes    []int // sequence of Reserve lanes
		wantNext int
		wantLen  int
	}{
		{name: "contiguous", lanes: []int{0, 1, 2}, wantNext: 3, wantLen: 3},
		{name: "gap rejected", lanes: []int{0, 2}, wantNext: 1, wantLen: 1},
		{name: "duplicate rejected", lanes: []int{0, 0, 1}, wantNext: 2, wantLen: 2},
		{name: "must start at zero", lanes: []int{1}, wantNext: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVertex(5)
			for i, lane := range tt.lanes {
				v.Reserve(lane, i, i)
			}
			if v.nextLane != tt.wantNext {
				t.Errorf("nextLane = %d, want %d", v.nextLane, tt.wantNext)
			}
			if len(v.reservations) != tt.wantLen {
				t.Errorf("reservations = %d entries, want %d", len(v.reservations), tt.wantLen)
			}
		})
	}
}

func TestVertexFindReservation(t *testing.T) {
	v := newVertex(4)
	v.Reserve(0, 9, 2)
	v.Reserve(1, 7, 1)

	if p, ok := v.FindReservation(7, 1); !ok || p != (Point{Lane: 1, Row: 4}) {
		t.Errorf("FindReservation(7, 1) = %+v, %v; want {1 4}, true", p, ok)
	}
	// Both vertex and branch must match.
	if _, ok := v.FindReservation(7, 2); ok {
		t.Error("FindReservation(7, 2) found a mismatched reservation")
	}
	if _, ok := v.FindReservation(9, 1); ok {
		t.Error("FindReservation(9, 1) found a mismatched reservation")
	}
}

func TestVertexIsMerge(t *testing.T) {
	v := newVertex(0)
	if v.IsMerge() {
		t.Error("IsMerge() = true with no parents")
	}
	v.AddParent(1)
	if v.IsMerge() {
		t.Error("IsMerge() = true with one parent")
	}
	v.AddParent(NullID)
	if !v.IsMerge() {
		t.Error("IsMerge() = false with two parents")
	}
}

func TestVertexNextPoint(t *testing.T) {
	v := newVertex(6)
	if got := v.NextPoint(); got != (Point{Lane: 0, Row: 6}) {
		t.Errorf("NextPoint() = %+v, want {0 6}", got)
	}
	v.Reserve(0, 1, 0)
	if got := v.NextPoint(); got != (Point{Lane: 1, Row: 6}) {
		t.Errorf("NextPoint() after reserve = %+v, want {1 6}", got)
	}
}
