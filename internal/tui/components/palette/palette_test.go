package palette

import (
	"strings"
	"testing"

	"toolbox/internal/catalog"
	"toolbox/internal/prefs"
	"toolbox/internal/search"
	"toolbox/internal/tui/helpers"
	"toolbox/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestPalette(t *testing.T) Model {
	t.Helper()
	m := New(helpers.NewUIContext(80, 24, nil, styles.ForTheme(prefs.ThemeLight)))
	m.SetSize(80, 60)
	return m
}

func threeTools() []catalog.Tool {
	return []catalog.Tool{
		{ID: 1, Name: "Alpha", Emoji: "a", Category: catalog.CategoryDesign},
		{ID: 2, Name: "Bravo", Emoji: "b", Category: catalog.CategoryDesign},
		{ID: 3, Name: "Charlie", Emoji: "c", Category: catalog.CategoryDev},
	}
}

func TestTypingGoesToInput(t *testing.T) {
	m := newTestPalette(t)
	m.Open()

	for _, r := range "fig" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.Value() != "fig" {
		t.Errorf("expected input %q, got %q", "fig", m.Value())
	}

	m.Close()
	if m.Value() != "" {
		t.Error("Close should clear the input")
	}
	if _, ok := m.Selected(); ok {
		t.Error("Close should clear the results")
	}
}

func TestLongQueryIsNotCut(t *testing.T) {
	m := newTestPalette(t)
	m.Open()

	long := strings.Repeat("a", 120)
	for _, r := range long {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.Value() != long {
		t.Errorf("expected all %d characters kept, got %d", len(long), len(m.Value()))
	}
}

func TestSetSizeKeepsInputInsidePane(t *testing.T) {
	m := newTestPalette(t)

	m.SetSize(100, 60)
	if m.input.Width != 60 {
		t.Errorf("expected preferred input width 60, got %d", m.input.Width)
	}

	m.SetSize(40, 60)
	if m.input.Width != 32 {
		t.Errorf("expected input clamped to the pane, got %d", m.input.Width)
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	m := newTestPalette(t)
	m.Open()
	m.SetResult(search.Result{Kind: search.KindMatches, Query: "a", Tools: threeTools()})

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m.Update(down)
	m.Update(down)
	m.Update(down)
	if tool, _ := m.Selected(); tool.ID != 3 {
		t.Errorf("cursor should stop at the last result, got %d", tool.ID)
	}

	m.Update(up)
	if tool, _ := m.Selected(); tool.ID != 2 {
		t.Errorf("expected Bravo after moving up, got %d", tool.ID)
	}

	// Fewer results pull the cursor back into range.
	m.SetResult(search.Result{Kind: search.KindMatches, Query: "al", Tools: threeTools()[:1]})
	if tool, ok := m.Selected(); !ok || tool.ID != 1 {
		t.Errorf("expected cursor clamped to Alpha, got %v %v", tool.ID, ok)
	}

	if m.Value() != "" {
		t.Errorf("navigation keys should not reach the input, got %q", m.Value())
	}
}

func TestView(t *testing.T) {
	m := newTestPalette(t)
	m.Open()

	m.SetResult(search.Result{Kind: search.KindSuggestions, Tools: threeTools()[:2]})
	out := m.View()
	if !strings.Contains(out, "Popular tools") {
		t.Errorf("suggestions should have a heading:\n%s", out)
	}
	if !strings.Contains(out, "> a Alpha") {
		t.Errorf("first suggestion should be highlighted:\n%s", out)
	}

	m.SetResult(search.Result{Kind: search.KindNoResults, Query: " zzz "})
	out = m.View()
	if !strings.Contains(out, `No tools found for "zzz"`) {
		t.Errorf("expected no-results message:\n%s", out)
	}
	if _, ok := m.Selected(); ok {
		t.Error("nothing should be selectable without results")
	}
}
