package tui

import (
	"fmt"
	"sort"

	"toolbox/internal/catalog"
	"toolbox/internal/controller"
	"toolbox/internal/prefs"
	"toolbox/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 34

// sidebarModel is the category selector plus a read-only summary of the
// other filters.
type sidebarModel struct {
	entries []catalog.Category
	cursor  int
	width   int
}

// newSidebar lists CategoryAll, the known categories in display order, then
// any other category present in counts.
func newSidebar(counts map[catalog.Category]int) sidebarModel {
	entries := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories()...)

	var extra []catalog.Category
	for c := range counts {
		if c != catalog.CategoryAll && !c.Known() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return sidebarModel{entries: append(entries, extra...), width: sidebarWidth}
}

func (s *sidebarModel) up() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *sidebarModel) down() {
	if s.cursor < len(s.entries)-1 {
		s.cursor++
	}
}

func (s sidebarModel) current() catalog.Category {
	return s.entries[s.cursor]
}

func (s sidebarModel) View(v controller.View, st styles.Styles, focused bool) string {
	lines := []string{st.SidebarHeading.UnsetMarginTop().Render("Categories")}

	for i, c := range s.entries {
		label := fmt.Sprintf("%s (%d)", c.Label(), v.CategoryCounts[c])
		active := !v.FavoritesOnly && c == v.Category

		prefix := "  "
		if focused && i == s.cursor {
			prefix = "▸ "
		}

		switch {
		case focused && i == s.cursor:
			lines = append(lines, st.SidebarSelected.Render(prefix+label))
		case active:
			lines = append(lines, st.SidebarActive.Render(prefix+label))
		default:
			lines = append(lines, st.SidebarItem.Render(prefix+label))
		}
	}

	lines = append(lines, st.SidebarHeading.Render("Filters"))

	fav := fmt.Sprintf("[f] ★ Favorites (%d)", len(v.Favorites))
	if v.FavoritesOnly {
		lines = append(lines, st.SidebarActive.Render(fav+" ✓"))
	} else {
		lines = append(lines, st.SidebarItem.Render(fav))
	}

	for i, tag := range catalog.Tags() {
		label := fmt.Sprintf("[%d] %s", i+1, tag.Label())
		if v.Tag == tag {
			lines = append(lines, st.SidebarActive.Render(label+" ✓"))
		} else {
			lines = append(lines, st.SidebarItem.Render(label))
		}
	}

	lines = append(lines,
		st.SidebarHeading.Render("View"),
		st.SidebarItem.Render("[s] Sort: "+v.Sort.Label()),
		st.SidebarItem.Render("[t] Theme: "+themeLabel(v.Theme)),
	)

	pane := st.Pane
	if focused {
		pane = st.PaneFocused
	}
	return pane.Width(s.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func themeLabel(t prefs.Theme) string {
	if t == prefs.ThemeDark {
		return "Dark"
	}
	return "Light"
}
