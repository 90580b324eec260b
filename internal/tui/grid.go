package tui

import (
	"strings"

	"toolbox/internal/catalog"
	"toolbox/internal/controller"
	"toolbox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/list"
)

// toolItem is one row of the tool grid.
type toolItem struct {
	tool     catalog.Tool
	favorite bool
}

func (i toolItem) Title() string {
	var b strings.Builder
	b.WriteString(i.tool.Emoji)
	b.WriteString(" ")
	b.WriteString(i.tool.Name)
	if i.favorite {
		b.WriteString(" ★")
	}
	if i.tool.Popular {
		b.WriteString(" 🔥 Popular")
	}
	if i.tool.EditorChoice {
		b.WriteString(" 🏆 Editor's choice")
	}
	return b.String()
}

func (i toolItem) Description() string {
	parts := []string{i.tool.Category.Label()}
	for _, t := range i.tool.Tags {
		parts = append(parts, t.Label())
	}
	meta := strings.Join(parts, " · ")
	if i.tool.Description == "" {
		return meta
	}
	return meta + " · " + i.tool.Description
}

func (i toolItem) FilterValue() string { return i.tool.Name }

func gridItems(v controller.View) []list.Item {
	items := make([]list.Item, len(v.Tools))
	for i, t := range v.Tools {
		items[i] = toolItem{tool: t, favorite: v.IsFavorite(t.ID)}
	}
	return items
}

func newGridDelegate(st styles.Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	p := st.Palette

	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(p.Text)
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(p.Muted)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(p.Accent).BorderLeftForeground(p.Accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(p.Secondary).BorderLeftForeground(p.Accent)
	return d
}

func newGrid(v controller.View, st styles.Styles) list.Model {
	grid := list.New(gridItems(v), newGridDelegate(st), 0, 0)
	grid.Title = ""
	grid.SetShowTitle(false)
	grid.SetShowStatusBar(false)
	grid.SetFilteringEnabled(false) // the palette does searching
	grid.SetShowHelp(false)
	grid.KeyMap.Quit.SetEnabled(false)
	grid.KeyMap.ForceQuit.SetEnabled(false)
	return grid
}

func selectedTool(grid list.Model) (catalog.Tool, bool) {
	it, ok := grid.SelectedItem().(toolItem)
	if !ok {
		return catalog.Tool{}, false
	}
	return it.tool, true
}
