package lane

import "testing"

func TestBranchAddLine(t *testing.T) {
	b := newBranch(3)
	b.AddLine(Point{0, 0}, Point{0, 1}, true, false)
	b.AddLine(Point{0, 1}, Point{1, 2}, true, true)

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() = %d entries, want 2", len(lines))
	}
	if !lines[1].LockedFirst {
		t.Error("second line LockedFirst = false, want true")
	}
	if b.Colour() != 3 {
		t.Errorf("Colour() = %d, want 3", b.Colour())
	}
}

func TestBranchUncommittedCounter(t *testing.T) {
	tests := []struct {
		name string
		add  func(b *Branch)
		want int
	}{
		{
			name: "uncommitted lines increment",
			add: func(b *Branch) {
				b.AddLine(Point{0, 0}, Point{0, 1}, false, false)
				b.AddLine(Point{0, 1}, Point{0, 2}, false, false)
			},
			want: 2,
		},
		{
			name: "committed line at lane 0 lowers toward its row",
			add: func(b *Branch) {
				b.AddLine(Point{0, 0}, Point{0, 1}, false, false)
				b.AddLine(Point{0, 1}, Point{0, 2}, false, false)
				b.AddLine(Point{0, 2}, Point{0, 1}, true, false)
			},
			want: 1,
		},
		{
			name: "committed line off lane 0 leaves counter alone",
			add: func(b *Branch) {
				b.AddLine(Point{0, 0}, Point{0, 1}, false, false)
				b.AddLine(Point{0, 1}, Point{1, 2}, true, false)
			},
			want: 1,
		},
		{
			name: "committed line cannot raise the counter",
			add: func(b *Branch) {
				b.AddLine(Point{0, 0}, Point{0, 5}, true, false)
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBranch(0)
			tt.add(b)
			if b.numUncommitted != tt.want {
				t.Errorf("numUncommitted = %d, want %d", b.numUncommitted, tt.want)
			}
		})
	}
}

func TestBranchEnd(t *testing.T) {
	b := newBranch(0)
	if b.End() != 0 {
		t.Errorf("End() = %d, want 0", b.End())
	}
	b.SetEnd(7)
	if b.End() != 7 {
		t.Errorf("End() = %d, want 7", b.End())
	}
}
