package lane

import (
	"fmt"
	"strconv"
	"strings"
)

// PathBuckets is the number of path strings emitted per row. Segments are
// grouped by colour index modulo PathBuckets — an identity-losing grouping
// used only for client-side stroke styling, never for branch distinctness.
const PathBuckets = 8

// Metrics holds the pixel geometry of the rendered grid. All row-local
// coordinates produced by [Builder.RowPaths] are relative to the top-left
// corner of the row's vertical band.
type Metrics struct {
	ColSpacing float64 // horizontal distance between lanes
	RowHeight  float64 // vertical height of one row band
	NodeRadius float64 // radius of the commit-node marker
	Inset      float64 // left inset of lane 0's center line
}

// DefaultMetrics returns the grid geometry used by the reference rendering:
// 16px lane spacing, 28px rows, 4px node markers, 7px inset.
func DefaultMetrics() Metrics {
	return Metrics{ColSpacing: 16, RowHeight: 28, NodeRadius: 4, Inset: 7}
}

func (m Metrics) laneX(lane int) float64 { return float64(lane)*m.ColSpacing + m.Inset }
func (m Metrics) centerY() float64       { return m.RowHeight / 2 }
func (m Metrics) curveOffset() float64   { return m.RowHeight * 0.8 }

// RowGeometry is the drawable output for one display row: one path string
// per colour bucket plus the row's own commit-node marker path.
type RowGeometry struct {
	Lines [PathBuckets]string
	Node  string
}

// Segment is one line segment of some branch, paired with that branch's
// colour index. It is the raw form consumed by non-SVG sinks.
type Segment struct {
	Line   Line
	Colour int
}

// Segments returns every branch line segment intersecting the given row,
// either by spanning it or by starting or ending on it. The result is in
// branch-then-append order, which is deterministic for a given Load.
func (b *Builder) Segments(row int) []Segment {
	var segs []Segment
	for _, br := range b.branches {
		for _, l := range br.lines {
			if l.P1.Row == row || l.P2.Row == row || (l.P1.Row < row && l.P2.Row > row) {
				segs = append(segs, Segment{Line: l, Colour: br.colour})
			}
		}
	}
	return segs
}

// RowPaths generates the SVG path fragments for one display row.
//
// Same-lane segments become vertical strokes clipped to the row band.
// Cross-lane segments are emitted only at their own start and end rows —
// pass-through rows receive a plain vertical stroke — as curve pieces
// anchored per the segment's LockedFirst flag, so adjacent rows compose
// into one continuous S-curve without duplicate drawing.
func (b *Builder) RowPaths(row int, m Metrics) RowGeometry {
	var geo RowGeometry
	if row < 0 || row >= len(b.vertices) {
		return geo
	}

	var paths [PathBuckets]strings.Builder
	for _, br := range b.branches {
		bucket := br.colour % PathBuckets
		for _, l := range br.lines {
			if l.P1.Row != row && l.P2.Row != row && !(l.P1.Row < row && l.P2.Row > row) {
				continue
			}
			if l.P1.Lane == l.P2.Lane {
				appendVertical(&paths[bucket], l, row, m)
			} else if l.P1.Row == row || l.P2.Row == row {
				appendCurve(&paths[bucket], l, row, m)
			}
		}
	}
	for i := range paths {
		geo.Lines[i] = paths[i].String()
	}

	geo.Node = nodeMarker(m.laneX(b.vertices[row].lane), m.centerY(), m.NodeRadius)
	return geo
}

// appendVertical emits the part of a same-lane segment that falls inside
// the row's vertical band, in row-local coordinates.
func appendVertical(path *strings.Builder, l Line, row int, m Metrics) {
	x := m.laneX(l.P1.Lane)
	y1 := float64(l.P1.Row)*m.RowHeight + m.centerY()
	y2 := float64(l.P2.Row)*m.RowHeight + m.centerY()

	rowTop := float64(row) * m.RowHeight
	rowBottom := rowTop + m.RowHeight

	drawY1 := max(y1, rowTop)
	drawY2 := min(y2, rowBottom)
	if drawY1 < drawY2 {
		fmt.Fprintf(path, "M %s %s L %s %s ",
			ftoa(x), ftoa(drawY1-rowTop), ftoa(x), ftoa(drawY2-rowTop))
	}
}

// appendCurve emits the start- or end-row piece of a cross-lane segment.
// The LockedFirst flag decides which half is the straight stroke and which
// half carries the cubic curve.
func appendCurve(path *strings.Builder, l Line, row int, m Metrics) {
	cy := m.centerY()
	x1 := m.laneX(l.P1.Lane)
	x2 := m.laneX(l.P2.Lane)

	switch {
	case l.P1.Row == row:
		if l.LockedFirst {
			ctrlY := cy + min(m.curveOffset(), m.RowHeight-cy)
			fmt.Fprintf(path, "M %s %s C %s %s %s %s %s %s ",
				ftoa(x1), ftoa(cy),
				ftoa(x1), ftoa(ctrlY),
				ftoa(x2), ftoa(m.RowHeight),
				ftoa(x2), ftoa(m.RowHeight))
		} else {
			fmt.Fprintf(path, "M %s %s L %s %s ",
				ftoa(x1), ftoa(cy), ftoa(x1), ftoa(m.RowHeight))
		}
	case l.P2.Row == row:
		if l.LockedFirst {
			fmt.Fprintf(path, "M %s 0 L %s %s ",
				ftoa(x2), ftoa(x2), ftoa(cy))
		} else {
			ctrlY := cy - min(m.curveOffset(), cy)
			fmt.Fprintf(path, "M %s 0 C %s 0 %s %s %s %s ",
				ftoa(x1),
				ftoa(x1),
				ftoa(x2), ftoa(ctrlY),
				ftoa(x2), ftoa(cy))
		}
	}
}

// nodeMarker draws a small circle centered on (x, y) as two arcs.
func nodeMarker(x, y, r float64) string {
	return fmt.Sprintf("M %s %s m -%s 0 a %s %s 0 1 0 %s 0 a %s %s 0 1 0 -%s 0 ",
		ftoa(x), ftoa(y),
		ftoa(r),
		ftoa(r), ftoa(r), ftoa(2*r),
		ftoa(r), ftoa(r), ftoa(2*r))
}

// ftoa formats a coordinate with the minimal digits needed to round-trip.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
