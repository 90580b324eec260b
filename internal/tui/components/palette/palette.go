// Package palette is the quick-search overlay: a text input over a short
// list of results.
package palette

import (
	"fmt"
	"strings"

	"toolbox/internal/catalog"
	"toolbox/internal/search"
	"toolbox/internal/tui/helpers"
	"toolbox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const Placeholder = "Search tools by name, description or category..."

type Model struct {
	input  textinput.Model
	styles styles.Styles
	width  int

	result search.Result
	cursor int
}

func New(ctx helpers.UIContext) Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "🔍 "

	return Model{input: ti, styles: ctx.Styles, width: ctx.Width}
}

// SetSize sets the pane width and the preferred input width. The input never
// outgrows the pane.
func (m *Model) SetSize(width, inputWidth int) {
	m.width = width
	m.input.Width = max(min(inputWidth, width-8), 10)
}

func (m *Model) SetStyles(s styles.Styles) {
	m.styles = s
}

// Open resets the input and focuses it.
func (m *Model) Open() tea.Cmd {
	m.input.SetValue("")
	m.cursor = 0
	return m.input.Focus()
}

func (m *Model) Close() {
	m.input.Blur()
	m.input.SetValue("")
	m.result = search.Result{}
	m.cursor = 0
}

func (m Model) Value() string {
	return m.input.Value()
}

// SetResult replaces the results and keeps the cursor in range.
func (m *Model) SetResult(r search.Result) {
	m.result = r
	if m.cursor >= len(r.Tools) {
		m.cursor = max(len(r.Tools)-1, 0)
	}
}

// Selected returns the highlighted result.
func (m Model) Selected() (catalog.Tool, bool) {
	if m.cursor < 0 || m.cursor >= len(m.result.Tools) {
		return catalog.Tool{}, false
	}
	return m.result.Tools[m.cursor], true
}

// Update moves the cursor on up/down and sends everything else to the input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return nil
		case "down", "ctrl+n":
			if m.cursor < len(m.result.Tools)-1 {
				m.cursor++
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m Model) View() string {
	lines := []string{m.styles.Input.Width(max(m.width-4, 20)).Render(m.input.View()), ""}

	switch m.result.Kind {
	case search.KindSuggestions:
		lines = append(lines, m.styles.SidebarHeading.UnsetMarginTop().Render("Popular tools"))
	case search.KindNoResults:
		msg := fmt.Sprintf("No tools found for %q", strings.TrimSpace(m.result.Query))
		lines = append(lines, m.styles.Empty.Render(msg))
	}

	for i, t := range m.result.Tools {
		line := fmt.Sprintf("%s %s  %s", t.Emoji, t.Name, m.styles.Muted.Render(t.Category.Label()))
		if m.width > 10 {
			line = truncate.StringWithTail(line, uint(m.width-6), "…")
		}
		if i == m.cursor {
			lines = append(lines, m.styles.SidebarSelected.Render("> "+line))
		} else {
			lines = append(lines, m.styles.SidebarItem.Render("  "+line))
		}
	}

	return m.styles.PaneFocused.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
