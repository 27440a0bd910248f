package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gitlane/pkg/lane"
)

// Terminal cell glyphs for a graph row.
const (
	glyphNode        = "●"
	glyphUncommitted = "○"
	glyphVertical    = "│"
	glyphCornerDown  = "╮"
	glyphCornerUp    = "╯"
	glyphBlank       = " "
)

// TextRow renders one graph row as coloured terminal cells, one two-column
// cell per lane. The width is constant across rows so commit lines align.
func TextRow(b *lane.Builder, row int, palette []string) string {
	lanes := maxLane(b) + 1
	cells := make([]string, lanes)
	styles := make([]lipgloss.Style, lanes)
	for i := range cells {
		cells[i] = glyphBlank
	}

	for _, s := range b.Segments(row) {
		glyph, laneIdx := segmentGlyph(s.Line, row)
		if laneIdx < 0 || laneIdx >= lanes {
			continue
		}
		if cells[laneIdx] == glyphBlank {
			cells[laneIdx] = glyph
			styles[laneIdx] = laneStyle(palette, s.Colour)
		}
	}

	nodeLane := b.Lane(row)
	if nodeLane >= 0 && nodeLane < lanes {
		glyph := glyphNode
		if b.IsUncommitted(row) {
			glyph = glyphUncommitted
		}
		cells[nodeLane] = glyph
		styles[nodeLane] = laneStyle(palette, b.Colour(row))
	}

	var sb strings.Builder
	for i, c := range cells {
		if c == glyphBlank {
			sb.WriteString(glyphBlank)
		} else {
			sb.WriteString(styles[i].Render(c))
		}
		sb.WriteString(" ")
	}
	return sb.String()
}

// segmentGlyph picks the glyph and lane a segment occupies at the given row.
// Segments run vertically on their start lane and shift to the end lane on
// their final row.
func segmentGlyph(l lane.Line, row int) (string, int) {
	switch {
	case row < l.P1.Row || row > l.P2.Row:
		return glyphBlank, -1
	case row == l.P2.Row && l.P1.Lane != l.P2.Lane:
		if l.P2.Lane > l.P1.Lane {
			return glyphCornerDown, l.P2.Lane
		}
		return glyphCornerUp, l.P1.Lane
	case row == l.P2.Row:
		return glyphVertical, l.P2.Lane
	default:
		return glyphVertical, l.P1.Lane
	}
}

func laneStyle(palette []string, colour int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colourAt(palette, colour)))
}
