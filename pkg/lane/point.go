package lane

// NullID marks a parent that exists but lies outside the loaded window.
// It is also returned as the ConnectsTo of reservations that terminate a
// branch at the window boundary.
const NullID = -1

// Point is a grid coordinate in the lane graph: Lane is the horizontal
// column, Row the vertical commit index (0 = most recent).
type Point struct {
	Lane int
	Row  int
}

// Line is one straight or curved segment of a branch's polyline.
//
// LockedFirst controls how the rendered curve anchors: true means the
// segment leaves P1 vertically before curving toward P2, false means it
// runs straight into P2 and curves near P1's side. Adjacent rows use this
// to compose one continuous S-curve without duplicate drawing.
type Line struct {
	P1          Point
	P2          Point
	LockedFirst bool
}

// Reservation records that a lane at some vertex's row is already committed
// to routing toward a specific vertex on a specific branch. Reservations
// are held per vertex, indexed by lane.
type Reservation struct {
	ConnectsTo int // target vertex id, or NullID
	OnBranch   int // branch index
}
