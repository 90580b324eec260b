package styles

import (
	"toolbox/internal/prefs"

	"github.com/charmbracelet/lipgloss"
)

// Centralized Lip Gloss styles for the toolbox TUI.
// All colors are specified using hex codes, one palette per theme.

type Palette struct {
	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Favorite  lipgloss.Color
	Badge     lipgloss.Color
}

var (
	LightPalette = Palette{
		Accent:    lipgloss.Color("#c2188f"),
		Secondary: lipgloss.Color("#005f87"),
		Text:      lipgloss.Color("#1c1c1c"),
		Muted:     lipgloss.Color("#6c6c6c"),
		Border:    lipgloss.Color("#8787d7"),
		Error:     lipgloss.Color("#d7005f"),
		Success:   lipgloss.Color("#008700"),
		Favorite:  lipgloss.Color("#d78700"),
		Badge:     lipgloss.Color("#5f00af"),
	}

	DarkPalette = Palette{
		Accent:    lipgloss.Color("#ff5fd2"),
		Secondary: lipgloss.Color("#5fd7ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#a8a8a8"),
		Border:    lipgloss.Color("#5f5fff"),
		Error:     lipgloss.Color("#ff005f"),
		Success:   lipgloss.Color("#00ff5f"),
		Favorite:  lipgloss.Color("#ffd75f"),
		Badge:     lipgloss.Color("#af87ff"),
	}
)

// Styles is the full set of styles for one theme.
type Styles struct {
	Theme   prefs.Theme
	Palette Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	NormalText lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Help       lipgloss.Style
	Input      lipgloss.Style

	// Shared pane styles. The focused variant highlights the active pane.
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style

	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style
	SidebarActive   lipgloss.Style
	SidebarHeading  lipgloss.Style

	Muted    lipgloss.Style
	Favorite lipgloss.Style
	Badge    lipgloss.Style
	Tag      lipgloss.Style
	Empty    lipgloss.Style
}

func ForTheme(theme prefs.Theme) Styles {
	p := LightPalette
	if theme == prefs.ThemeDark {
		p = DarkPalette
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		PaddingLeft(1).
		PaddingRight(1)

	return Styles{
		Theme:   theme,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			PaddingLeft(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(1),

		NormalText: lipgloss.NewStyle().
			Foreground(p.Text),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),

		Help: lipgloss.NewStyle().
			Faint(true).
			Foreground(p.Muted).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		Pane:        pane,
		PaneFocused: pane.BorderForeground(p.Accent),

		SidebarItem: lipgloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(1),

		SidebarSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			PaddingLeft(1),

		SidebarActive: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true).
			PaddingLeft(1),

		SidebarHeading: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true).
			MarginTop(1),

		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Favorite: lipgloss.NewStyle().Foreground(p.Favorite),
		Badge:    lipgloss.NewStyle().Foreground(p.Badge).Bold(true),
		Tag:      lipgloss.NewStyle().Foreground(p.Secondary),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Padding(1, 2),
	}
}
