package render

// Palette is the default branch colour cycle, indexed by branch colour.
// Colours beyond the palette wrap around.
var Palette = []string{
	"#3584E4", // blue
	"#2EC27E", // green
	"#F5C211", // yellow
	"#E01B24", // red
	"#9141AC", // purple
	"#FF7800", // orange
	"#00B8D4", // cyan
	"#E91E63", // pink
	"#4FC3F7", // light blue
	"#81C784", // light green
	"#FFB74D", // light orange
	"#F06292", // light pink
	"#BA68C8", // light purple
	"#4DB6AC", // teal
	"#AED581", // lime
	"#90A4AE", // blue grey
}

// colourAt returns the palette entry for a branch colour, wrapping around.
func colourAt(palette []string, colour int) string {
	if len(palette) == 0 {
		palette = Palette
	}
	return palette[colour%len(palette)]
}
