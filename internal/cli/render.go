package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitlane/pkg/errors"
	"github.com/matzehuels/gitlane/pkg/gitlog"
	"github.com/matzehuels/gitlane/pkg/lane"
	"github.com/matzehuels/gitlane/pkg/render"
)

// newRenderCmd creates the render command, which writes the commit graph to
// a file in one of the supported output formats.
func newRenderCmd() *cobra.Command {
	var (
		format string
		style  string
		output string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "Render the commit graph to a file",
		Long: `Render reads the commit history of a repository (the current directory by
default) and writes the graph to a file.

Formats:
  svg    standalone SVG document (default)
  png    raster image (lane style needs librsvg installed)
  pdf    vector document (needs librsvg installed)
  dot    Graphviz DOT text

Styles:
  lane   coloured branch lanes, one row per commit (default)
  nodes  classic node-link diagram laid out by Graphviz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runRender(cmd, dir, format, style, output, limit)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, pdf, dot")
	cmd.Flags().StringVarP(&style, "style", "s", "lane", "graph style: lane, nodes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default graph.<format>)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum commits to include")

	return cmd
}

func runRender(cmd *cobra.Command, dir, format, style, output string, limit int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = cfg.Limit
	}

	prog := newProgress(logger)
	h, err := gitlog.Load(ctx, dir, gitlog.LoadOptions{Limit: limit})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d commits", len(h.Commits)))

	logger.Debug("rendering", "format", format, "style", style)
	data, err := renderHistory(h, cfg, format, style)
	if err != nil {
		return err
	}

	if output == "" {
		output = "graph." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}

	printSuccess("Rendered %d commits", len(h.Commits))
	printFile(output)
	printDetail("%s style, %s format", style, format)
	return nil
}

// renderHistory dispatches to the sink matching format and style.
func renderHistory(h *gitlog.History, cfg Config, format, style string) ([]byte, error) {
	switch style {
	case "lane":
		return renderLanes(h, cfg, format)
	case "nodes":
		return renderNodes(h, format)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown style %q (want lane or nodes)", style)
	}
}

func renderLanes(h *gitlog.History, cfg Config, format string) ([]byte, error) {
	b := lane.New()
	b.Load(h.GraphInput())

	svg := render.SVG(b,
		render.WithMetrics(cfg.metrics()),
		render.WithPalette(cfg.Palette),
		render.WithLabels(rowLabels(h)),
	)

	switch format {
	case "svg":
		return svg, nil
	case "png":
		return render.ToPNG(svg, 2.0)
	case "pdf":
		return render.ToPDF(svg)
	case "dot":
		return nil, errors.New(errors.ErrCodeInvalidFormat, "dot output requires --style nodes")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png, pdf, or dot)", format)
	}
}

func renderNodes(h *gitlog.History, format string) ([]byte, error) {
	dot := render.ToDOT(h)

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return render.RenderDOTSVG(dot)
	case "png":
		return render.RenderDOTPNG(dot)
	case "pdf":
		svg, err := render.RenderDOTSVG(dot)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png, pdf, or dot)", format)
	}
}

// rowLabels builds one text label per graph row. When the working tree is
// dirty the engine injects a synthetic first row, so labels shift with it.
func rowLabels(h *gitlog.History) []string {
	var labels []string
	if h.Uncommitted > 0 {
		labels = append(labels, fmt.Sprintf("(%d uncommitted changes)", h.Uncommitted))
	}
	for _, c := range h.Commits {
		label := gitlog.ShortHash(c.Hash) + " " + c.Summary
		if len(c.Refs) > 0 {
			label += " [" + strings.Join(c.Refs, ", ") + "]"
		}
		labels = append(labels, label)
	}
	return labels
}
