package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitlane/pkg/gitlog"
	"github.com/matzehuels/gitlane/pkg/lane"
	"github.com/matzehuels/gitlane/pkg/render"
)

// newBrowseCmd creates the browse command, an interactive terminal view of
// the commit graph.
func newBrowseCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse the commit graph in the terminal",
		Long: `Browse shows the commit graph as coloured lanes in the terminal.

Keys:
  j/k, down/up  move the cursor
  g/G           jump to the newest/oldest commit
  /             fuzzy-filter commits by subject or author
  y             copy the selected commit hash to the clipboard
  q             quit

When stdout is not a terminal the graph is printed once as a plain listing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runBrowse(cmd, dir, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum commits to include")

	return cmd
}

func runBrowse(cmd *cobra.Command, dir string, limit int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = cfg.Limit
	}

	h, err := gitlog.Load(ctx, dir, gitlog.LoadOptions{Limit: limit})
	if err != nil {
		return err
	}
	logger.Debug("loaded history", "commits", len(h.Commits), "uncommitted", h.Uncommitted)

	b := lane.New()
	b.Load(h.GraphInput())
	items := buildRowItems(h, b, cfg.Palette)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		for _, it := range items {
			fmt.Println(it.graph + " " + it.plain())
		}
		return nil
	}

	m := newBrowseModel(items)
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// rowItem is one precomputed line of the browser: graph cells plus commit
// metadata, aligned with the engine's row numbering.
type rowItem struct {
	graph   string // coloured lane cells
	subject string // summary line plus author
	hash    string // empty on the synthetic uncommitted row
	head    bool
}

// plain is the unstyled label, also the fuzzy-match haystack.
func (it rowItem) plain() string {
	if it.hash == "" {
		return it.subject
	}
	return gitlog.ShortHash(it.hash) + " " + it.subject
}

func buildRowItems(h *gitlog.History, b *lane.Builder, palette []string) []rowItem {
	// The engine injects a synthetic first row when the tree is dirty.
	offset := 0
	if h.Uncommitted > 0 {
		offset = 1
	}

	var items []rowItem
	if offset == 1 {
		items = append(items, rowItem{
			graph:   render.TextRow(b, 0, palette),
			subject: fmt.Sprintf("(%d uncommitted changes)", h.Uncommitted),
		})
	}
	for i, c := range h.Commits {
		row := i + offset
		subject := c.Summary
		if c.Author != "" {
			subject += "  " + c.Author
		}
		items = append(items, rowItem{
			graph:   render.TextRow(b, row, palette),
			subject: subject,
			hash:    c.Hash,
			head:    b.IsHead(row),
		})
	}
	return items
}

// =============================================================================
// Bubbletea model
// =============================================================================

type browseModel struct {
	items   []rowItem
	visible []int // indices into items, after filtering
	cursor  int   // position within visible
	offset  int
	height  int

	filtering bool
	query     string

	status string
}

func newBrowseModel(items []rowItem) browseModel {
	m := browseModel{items: items, height: 20}
	m.visible = allRows(len(items))
	return m
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "g":
		m.cursor, m.offset = 0, 0
	case "G":
		if n := len(m.visible); n > 0 {
			m.cursor = n - 1
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "y":
		if it, ok := m.selected(); ok && it.hash != "" {
			if err := clipboard.WriteAll(it.hash); err != nil {
				m.status = StyleWarning.Render("clipboard unavailable")
			} else {
				m.status = StyleSuccess.Render("copied " + gitlog.ShortHash(it.hash))
			}
		}
	case "/":
		m.filtering = true
		m.query = ""
	}
	return m, nil
}

func (m browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.query = ""
		m.visible = allRows(len(m.items))
		m.cursor, m.offset = 0, 0
	case "enter":
		m.filtering = false
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.applyFilter()
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.query += string(msg.Runes)
			m.applyFilter()
		}
	}
	return m, nil
}

// applyFilter recomputes visible rows from the fuzzy query.
func (m *browseModel) applyFilter() {
	if m.query == "" {
		m.visible = allRows(len(m.items))
		m.cursor, m.offset = 0, 0
		return
	}

	haystack := make([]string, len(m.items))
	for i, it := range m.items {
		haystack[i] = it.plain()
	}

	matches := fuzzy.Find(m.query, haystack)
	m.visible = m.visible[:0]
	for _, match := range matches {
		m.visible = append(m.visible, match.Index)
	}
	m.cursor, m.offset = 0, 0
}

func (m browseModel) selected() (rowItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return rowItem{}, false
	}
	return m.items[m.visible[m.cursor]], true
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Commit Graph"))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(StyleHighlight.Render("/" + m.query))
		b.WriteString(listDimStyle.Render("  enter accept  esc clear"))
	} else {
		b.WriteString(listDimStyle.Render("j/k navigate  / filter  y copy hash  q quit"))
	}
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := m.offset; i < end; i++ {
		it := m.items[m.visible[i]]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		label := it.subject
		if it.hash != "" {
			label = styleHash.Render(gitlog.ShortHash(it.hash)) + " " + it.subject
		}
		if it.head {
			label += " " + styleHead.Render("HEAD")
		}

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(cursor) + it.graph + " " + listSelectedStyle.Render(label))
		} else {
			b.WriteString(cursor + it.graph + " " + listNormalStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.visible))))
	}

	return b.String()
}
