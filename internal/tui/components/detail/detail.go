package detail

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"toolbox/internal/catalog"
	"toolbox/internal/logging"
	"toolbox/internal/prefs"
	"toolbox/internal/tui/helpers"
	"toolbox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type (
	// RenderedMsg carries glamour output for the tool being shown.
	RenderedMsg struct {
		content  string
		toolID   int
		renderID uint64
	}

	RenderErrorMsg struct {
		err      error
		toolID   int
		renderID uint64
	}
)

// Model shows one tool as rendered markdown in a scrollable viewport.
type Model struct {
	logger   *logging.AppLogger
	styles   styles.Styles
	viewport viewport.Model

	tool     catalog.Tool
	favorite bool

	renderCounter   *uint64
	currentRenderID uint64
}

func New(ctx helpers.UIContext) Model {
	vp := viewport.New(ctx.Width, ctx.Height)
	vp.MouseWheelEnabled = true

	renderCounter := uint64(0)
	return Model{
		logger:        ctx.Logger,
		styles:        ctx.Styles,
		viewport:      vp,
		renderCounter: &renderCounter,
	}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *Model) SetStyles(s styles.Styles) {
	m.styles = s
}

func (m Model) Tool() catalog.Tool {
	return m.tool
}

// Show switches to tool and returns the command that renders it.
func (m *Model) Show(tool catalog.Tool, favorite bool, theme prefs.Theme) tea.Cmd {
	m.tool = tool
	m.favorite = favorite
	m.viewport.GotoTop()
	m.viewport.SetContent("Loading " + tool.Name + "...")
	return m.render(theme)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RenderedMsg:
		if msg.toolID != m.tool.ID || msg.renderID < m.currentRenderID {
			m.logger.Debug("Ignoring stale detail render", "tool", msg.toolID, "renderID", msg.renderID)
			return nil
		}
		m.currentRenderID = msg.renderID
		m.viewport.SetContent(msg.content)
		return nil

	case RenderErrorMsg:
		if msg.toolID != m.tool.ID || msg.renderID < m.currentRenderID {
			return nil
		}
		m.currentRenderID = msg.renderID
		m.logger.Error("Failed to render tool detail", "tool", msg.toolID, "error", msg.err)
		// plain markdown is still readable
		m.viewport.SetContent(Markdown(m.tool, m.favorite))
		return nil

	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m Model) View() string {
	return m.styles.PaneFocused.
		Width(m.viewport.Width).
		Render(m.viewport.View())
}

func (m *Model) render(theme prefs.Theme) tea.Cmd {
	renderID := atomic.AddUint64(m.renderCounter, 1)
	tool := m.tool
	favorite := m.favorite
	style := GlamourStyle(theme)
	width := m.viewport.Width - 2
	if width <= 0 {
		width = 80
	}
	logger := m.logger

	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return RenderErrorMsg{err: err, toolID: tool.ID, renderID: renderID}
		}

		out, err := renderer.Render(Markdown(tool, favorite))
		if err != nil {
			return RenderErrorMsg{err: err, toolID: tool.ID, renderID: renderID}
		}
		logger.Debug("Tool detail rendered", "tool", tool.ID, "style", style, "renderID", renderID)
		return RenderedMsg{content: out, toolID: tool.ID, renderID: renderID}
	}
}

// GlamourStyle maps the app theme to a glamour style, unless GLAMOUR_STYLE
// names a concrete style.
func GlamourStyle(theme prefs.Theme) string {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" && style != "auto" {
		return style
	}
	if theme == prefs.ThemeDark {
		return "dark"
	}
	return "light"
}

// Markdown describes tool as a markdown document.
func Markdown(tool catalog.Tool, favorite bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", tool.Emoji, tool.Name)
	if tool.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", tool.Description)
	}

	fmt.Fprintf(&b, "- **Category:** %s\n", tool.Category.Label())
	if len(tool.Tags) > 0 {
		labels := make([]string, len(tool.Tags))
		for i, t := range tool.Tags {
			labels[i] = t.Label()
		}
		fmt.Fprintf(&b, "- **Pricing:** %s\n", strings.Join(labels, ", "))
	}
	if tool.Popular {
		b.WriteString("- 🔥 Popular\n")
	}
	if tool.EditorChoice {
		b.WriteString("- 🏆 Editor's choice\n")
	}
	if favorite {
		b.WriteString("- ⭐ In your favorites\n")
	}
	fmt.Fprintf(&b, "\n<%s>\n", tool.URL)

	return b.String()
}
