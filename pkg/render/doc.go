// Package render turns a laid-out commit graph into visual outputs.
//
// # Overview
//
// Three sinks are provided:
//
//   - [SVG]: a standalone SVG document composed from the engine's per-row
//     connector geometry, with optional row labels.
//   - [ToDOT] with [RenderDOTSVG] / [RenderDOTPNG]: a node-link diagram of
//     the commit history rendered through Graphviz.
//   - [TextRow]: coloured terminal cells for one graph row, used by the
//     interactive browser and the plain listing.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	svg := render.SVG(builder, render.WithLabels(labels))
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// # Colours
//
// Branch colours cycle through [Palette]; every sink accepts an override so
// callers can theme the output.
package render
