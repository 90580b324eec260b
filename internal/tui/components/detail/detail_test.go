package detail

import (
	"errors"
	"strings"
	"testing"

	"toolbox/internal/catalog"
	"toolbox/internal/logging"
	"toolbox/internal/prefs"
	"toolbox/internal/tui/helpers"
	"toolbox/internal/tui/styles"
)

func newTestDetail(t *testing.T) Model {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return New(helpers.NewUIContext(60, 12, logger, styles.ForTheme(prefs.ThemeLight)))
}

func sampleTool() catalog.Tool {
	return catalog.Tool{
		ID:           6,
		Name:         "Figma",
		Description:  "Collaborative interface design",
		Category:     catalog.CategoryDesign,
		Tags:         []catalog.Tag{catalog.TagFreemium},
		URL:          "https://www.figma.com",
		Emoji:        "🎨",
		Popular:      true,
		EditorChoice: true,
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleTool(), true)

	for _, want := range []string{
		"# 🎨 Figma",
		"Collaborative interface design",
		"**Category:** Design & Creativity",
		"**Pricing:** Freemium",
		"Popular",
		"Editor's choice",
		"In your favorites",
		"<https://www.figma.com>",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	plain := Markdown(catalog.Tool{ID: 1, Name: "Bare", Category: catalog.CategoryDev, URL: "https://bare.example"}, false)
	for _, unwanted := range []string{"Pricing", "Popular", "favorites"} {
		if strings.Contains(plain, unwanted) {
			t.Errorf("markdown for a bare tool should not mention %q:\n%s", unwanted, plain)
		}
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")
	if got := GlamourStyle(prefs.ThemeDark); got != "dark" {
		t.Errorf("expected dark, got %q", got)
	}
	if got := GlamourStyle(prefs.ThemeLight); got != "light" {
		t.Errorf("expected light, got %q", got)
	}

	t.Setenv("GLAMOUR_STYLE", "auto")
	if got := GlamourStyle(prefs.ThemeDark); got != "dark" {
		t.Errorf("auto should follow the app theme, got %q", got)
	}

	t.Setenv("GLAMOUR_STYLE", "dracula")
	if got := GlamourStyle(prefs.ThemeLight); got != "dracula" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestShowRendersAsync(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "notty")
	m := newTestDetail(t)

	cmd := m.Show(sampleTool(), false, prefs.ThemeLight)
	if cmd == nil {
		t.Fatal("Show should return a render command")
	}
	if !strings.Contains(m.View(), "Loading Figma") {
		t.Errorf("expected loading placeholder, got:\n%s", m.View())
	}

	msg := cmd()
	if _, ok := msg.(RenderedMsg); !ok {
		t.Fatalf("expected RenderedMsg, got %T", msg)
	}
	m.Update(msg)

	if strings.Contains(m.View(), "Loading") {
		t.Error("placeholder should be replaced by the render")
	}
	if !strings.Contains(m.View(), "Figma") {
		t.Errorf("rendered view should name the tool:\n%s", m.View())
	}
	if m.Tool().ID != 6 {
		t.Errorf("expected tool 6, got %d", m.Tool().ID)
	}
}

func TestStaleRendersIgnored(t *testing.T) {
	m := newTestDetail(t)
	m.Show(sampleTool(), false, prefs.ThemeLight)

	m.Update(RenderedMsg{content: "newest render", toolID: 6, renderID: 2})
	m.Update(RenderedMsg{content: "older render", toolID: 6, renderID: 1})
	m.Update(RenderedMsg{content: "other tool", toolID: 99, renderID: 3})

	out := m.View()
	if !strings.Contains(out, "newest render") {
		t.Errorf("expected newest render to stay, got:\n%s", out)
	}
	if strings.Contains(out, "older render") || strings.Contains(out, "other tool") {
		t.Errorf("stale render leaked into view:\n%s", out)
	}
}

func TestRenderErrorFallsBackToMarkdown(t *testing.T) {
	m := newTestDetail(t)
	m.Show(sampleTool(), false, prefs.ThemeLight)

	m.Update(RenderErrorMsg{err: errors.New("boom"), toolID: 6, renderID: 1})
	if !strings.Contains(m.View(), "# 🎨 Figma") {
		t.Errorf("expected raw markdown fallback, got:\n%s", m.View())
	}
}
