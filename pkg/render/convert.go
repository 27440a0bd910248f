package render

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/gitlane/pkg/errors"
)

// rsvgTool is the external converter used for SVG rasterization.
// Install with: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
const rsvgTool = "rsvg-convert"

// ToPDF converts SVG bytes to PDF. Requires librsvg.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor; 2.0 produces a
// 2x resolution image. Requires librsvg.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

// rsvgConvert pipes the SVG through rsvg-convert. A missing tool reports
// UNSUPPORTED so the CLI can tell "install librsvg" apart from a broken
// document, which reports INTERNAL_ERROR with the tool's stderr attached.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgTool); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(rsvgTool, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s to %s", rsvgTool, format)
		}
		return nil, errors.New(errors.ErrCodeInternal, "%s to %s: %s", rsvgTool, format, msg)
	}
	return out.Bytes(), nil
}
