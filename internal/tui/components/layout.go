package components

import (
	"strings"

	"toolbox/internal/prefs"
	"toolbox/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

type LayoutConfig struct {
	Title    string
	Subtitle string
	HelpText string
	MarginX  int
	MarginY  int
	MaxWidth int
}

type LayoutModel struct {
	config LayoutConfig
	styles styles.Styles
	width  int
	height int
	err    error
}

func NewLayout(config LayoutConfig) LayoutModel {
	if config.MarginX == 0 {
		config.MarginX = 2
	}
	if config.MarginY == 0 {
		config.MarginY = 1
	}
	if config.MaxWidth == 0 {
		config.MaxWidth = 140
	}

	return LayoutModel{config: config, styles: styles.ForTheme(prefs.ThemeLight)}
}

func (m LayoutModel) Update(msg tea.Msg) (LayoutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LayoutModel) SetStyles(s styles.Styles) LayoutModel {
	m.styles = s
	return m
}

func (m LayoutModel) SetError(err error) LayoutModel {
	if err != nil {
		m.err = err
	}
	return m
}

func (m LayoutModel) ClearError() LayoutModel {
	m.err = nil
	return m
}

func (m LayoutModel) GetError() error {
	return m.err
}

func (m LayoutModel) SetConfig(config LayoutConfig) LayoutModel {
	// Preserve defaults for zero values
	if config.MarginX == 0 {
		config.MarginX = m.config.MarginX
	}
	if config.MarginY == 0 {
		config.MarginY = m.config.MarginY
	}
	if config.MaxWidth == 0 {
		config.MaxWidth = m.config.MaxWidth
	}
	m.config = config
	return m
}

// Render the complete layout with content wrapped to the content width.
func (m LayoutModel) Render(content string) string {
	return m.render(content, true)
}

// RenderBlock is Render for content that is already laid out (panes, lists).
func (m LayoutModel) RenderBlock(content string) string {
	return m.render(content, false)
}

func (m LayoutModel) render(content string, wrap bool) string {
	sections := []string{}
	contentWidth := m.ContentWidth()

	header := []string{}
	if m.config.Title != "" {
		header = append(header, m.styles.Title.Render(m.wrapText(m.config.Title, contentWidth)))
	}
	if m.config.Subtitle != "" {
		header = append(header, m.styles.Subtitle.Render(m.wrapText(m.config.Subtitle, contentWidth)))
	}
	if len(header) > 0 {
		sections = append(sections, strings.Join(header, "\n"))
	}

	if content != "" {
		if wrap {
			content = m.styles.NormalText.Render(m.wrapText(content, contentWidth))
		}
		sections = append(sections, content)
	}

	if m.err != nil {
		errorText := "Error: " + m.err.Error()
		sections = append(sections, m.styles.Error.Render(m.wrapText(errorText, contentWidth)))
	}

	if m.config.HelpText != "" {
		help := m.wrapText(m.config.HelpText, contentWidth)
		sections = append(sections, m.styles.Help.Render(help))
	}

	joined := strings.Join(sections, "\n\n")
	return m.addMargins(joined)
}

// Robust text wrapping using reflow library
func (m LayoutModel) wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	paragraphs := strings.Split(text, "\n\n")
	var wrappedParagraphs []string

	for _, paragraph := range paragraphs {
		lines := strings.Split(paragraph, "\n")
		var wrappedLines []string

		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				wrappedLines = append(wrappedLines, "")
				continue
			}
			wrappedLines = append(wrappedLines, wordwrap.String(line, width))
		}

		wrappedParagraphs = append(wrappedParagraphs, strings.Join(wrappedLines, "\n"))
	}

	return strings.Join(wrappedParagraphs, "\n\n")
}

func (m LayoutModel) addMargins(content string) string {
	lines := strings.Split(content, "\n")
	marginLeft := strings.Repeat(" ", m.config.MarginX)

	for i, line := range lines {
		lines[i] = marginLeft + line
	}

	marginTop := strings.Repeat("\n", m.config.MarginY)
	marginBottom := strings.Repeat("\n", m.config.MarginY)
	return marginTop + strings.Join(lines, "\n") + marginBottom
}

// Helper methods for responsive design
func (m LayoutModel) ContentWidth() int {
	available := m.width - (m.config.MarginX * 2)
	if available > m.config.MaxWidth {
		return m.config.MaxWidth
	}
	if available < 40 {
		return 40 // Minimum readable width
	}
	return available
}

// ContentHeight is the height left for content after margins, the two header
// lines, the help line and the blank lines between sections.
func (m LayoutModel) ContentHeight() int {
	return m.height - (m.config.MarginY * 2) - 8
}

func (m LayoutModel) InputWidth() int {
	inputWidth := m.ContentWidth() - 8

	if inputWidth > 80 {
		return 80 // Maximum input width for readability
	}
	if inputWidth < 30 {
		return 30 // Minimum input width
	}
	return inputWidth
}
