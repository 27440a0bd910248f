package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/gitlane/pkg/lane"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	metrics     lane.Metrics
	palette     []string
	labels      []string
	strokeWidth float64
}

// WithMetrics overrides the default graph geometry.
func WithMetrics(m lane.Metrics) SVGOption { return func(r *svgRenderer) { r.metrics = m } }

// WithPalette overrides the default branch colour cycle.
func WithPalette(p []string) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// WithLabels draws one text label per row to the right of the graph.
func WithLabels(labels []string) SVGOption { return func(r *svgRenderer) { r.labels = labels } }

// WithStrokeWidth overrides the connector stroke width.
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }

// SVG composes the per-row connector geometry of a loaded builder into a
// standalone SVG document.
func SVG(b *lane.Builder, opts ...SVGOption) []byte {
	r := svgRenderer{
		metrics:     lane.DefaultMetrics(),
		palette:     Palette,
		strokeWidth: 2,
	}
	for _, opt := range opts {
		opt(&r)
	}

	rows := b.RowCount()
	m := r.metrics
	graphW := 2*m.Inset + float64(maxLane(b))*m.ColSpacing
	width := graphW
	if len(r.labels) > 0 {
		width = graphW + 8 + 7*float64(longest(r.labels))
	}
	height := float64(rows) * m.RowHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for row := 0; row < rows; row++ {
		geo := b.RowPaths(row, m)
		fmt.Fprintf(&buf, `  <g transform="translate(0,%s)">`+"\n", ftoa(float64(row)*m.RowHeight))

		for bucket, d := range geo.Lines {
			if d == "" {
				continue
			}
			fmt.Fprintf(&buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
				d, colourAt(r.palette, bucket), ftoa(r.strokeWidth))
		}

		if geo.Node != "" {
			colour := colourAt(r.palette, b.Colour(row))
			if b.IsUncommitted(row) {
				fmt.Fprintf(&buf, `    <path d="%s" fill="white" stroke="%s" stroke-width="%s"/>`+"\n",
					geo.Node, colour, ftoa(r.strokeWidth))
			} else {
				fmt.Fprintf(&buf, `    <path d="%s" fill="%s"/>`+"\n", geo.Node, colour)
			}
		}

		if row < len(r.labels) && r.labels[row] != "" {
			fmt.Fprintf(&buf, `    <text x="%s" y="%s" font-family="monospace" font-size="12" dominant-baseline="middle">%s</text>`+"\n",
				ftoa(graphW+8), ftoa(m.RowHeight/2), html.EscapeString(r.labels[row]))
		}

		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// maxLane scans all branch polylines for the rightmost lane in use.
func maxLane(b *lane.Builder) int {
	max := 0
	for i := 0; i < b.Branches(); i++ {
		for _, l := range b.Branch(i).Lines() {
			if l.P1.Lane > max {
				max = l.P1.Lane
			}
			if l.P2.Lane > max {
				max = l.P2.Lane
			}
		}
	}
	return max
}

// ftoa formats a coordinate without trailing zeros.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func longest(labels []string) int {
	n := 0
	for _, l := range labels {
		if len(l) > n {
			n = len(l)
		}
	}
	return n
}
