// Package tui is the terminal front end for toolbox, built on Bubble Tea and
// Lip Gloss.
//
// MainModel never changes filter or preference state itself. Every key that
// means something to the catalog is turned into a controller event, and the
// returned controller.View is what gets drawn:
//
//   - StateBrowse: category sidebar on the left, tool grid on the right
//   - StatePalette: quick search over the whole catalog (ctrl+k or /)
//   - StateDetail: one tool rendered as markdown with glamour
//
// Opening a URL and copying to the clipboard run as tea.Cmds and report back
// with messages, so a failing browser or clipboard only shows up in the
// error line.
package tui

import (
	"fmt"
	"io"

	"toolbox/internal/catalog"
	"toolbox/internal/controller"
	"toolbox/internal/logging"
	"toolbox/internal/tui/components"
	"toolbox/internal/tui/components/detail"
	"toolbox/internal/tui/components/palette"
	"toolbox/internal/tui/helpers"
	"toolbox/internal/tui/styles"
	"toolbox/internal/validation"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
)

// AppState represents the current state of the TUI application.
type AppState int

const (
	StateBrowse AppState = iota
	StatePalette
	StateDetail
	StateQuitting
)

func (s AppState) String() string {
	switch s {
	case StatePalette:
		return "palette"
	case StateDetail:
		return "detail"
	case StateQuitting:
		return "quitting"
	default:
		return "browse"
	}
}

type focusArea int

const (
	focusGrid focusArea = iota
	focusSidebar
)

type (
	URLOpenedMsg struct {
		Tool catalog.Tool
		Err  error
	}

	URLCopiedMsg struct {
		Tool catalog.Tool
		Err  error
	}
)

// MainModel is the root model for the TUI application.
type MainModel struct {
	logger *logging.AppLogger
	ctrl   *controller.Controller

	view  controller.View
	state AppState
	focus focusArea

	keys    KeyMap
	help    help.Model
	styles  styles.Styles
	layout  components.LayoutModel
	sidebar sidebarModel
	grid    list.Model
	palette palette.Model
	detail  detail.Model

	windowWidth  int
	windowHeight int
	status       string

	// side effects, swappable in tests
	openURL  func(string) error
	copyText func(string) error
}

func NewMainModel(ctrl *controller.Controller, logger *logging.AppLogger) *MainModel {
	v := ctrl.View()
	st := styles.ForTheme(v.Theme)

	layout := components.NewLayout(components.LayoutConfig{
		MarginX:  2,
		MarginY:  1,
		MaxWidth: 140,
	}).SetStyles(st)

	m := &MainModel{
		logger:   logger,
		ctrl:     ctrl,
		view:     v,
		state:    StateBrowse,
		focus:    focusGrid,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   st,
		layout:   layout,
		sidebar:  newSidebar(v.CategoryCounts),
		grid:     newGrid(v, st),
		openURL:  openInBrowser,
		copyText: clipboard.WriteAll,
	}

	ctx := m.GetUIContext()
	m.palette = palette.New(ctx)
	m.detail = detail.New(ctx)
	return m
}

func openInBrowser(url string) error {
	// xdg-open and friends would otherwise write over the alt screen
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

func (m *MainModel) Init() tea.Cmd {
	m.logger.Info("MainModel initialized", "tools", len(m.view.Tools), "theme", m.view.Theme)
	return nil
}

// GetUIContext creates a UI context with current dimensions and app state
func (m *MainModel) GetUIContext() helpers.UIContext {
	return helpers.NewUIContext(m.windowWidth, m.windowHeight, m.logger, m.styles)
}

// CurrentView returns the controller view the model last drew.
func (m *MainModel) CurrentView() controller.View {
	return m.view
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.LogMessage(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ctx := helpers.NewUIContext(msg.Width, msg.Height, m.logger, m.styles)
		if !ctx.HasValidDimensions() {
			m.logger.Warn("Invalid window dimensions received", "width", msg.Width, "height", msg.Height)
			return m, nil
		}
		m.layout, _ = m.layout.Update(msg)
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		return m, nil

	case URLOpenedMsg:
		if msg.Err != nil {
			m.logger.Error("Failed to open URL", "url", msg.Tool.URL, "error", msg.Err)
			m.layout = m.layout.SetError(fmt.Errorf("could not open %s: %w", msg.Tool.URL, msg.Err))
			return m, nil
		}
		m.status = "Opened " + msg.Tool.Name
		return m, nil

	case URLCopiedMsg:
		if msg.Err != nil {
			m.logger.Error("Failed to copy URL", "url", msg.Tool.URL, "error", msg.Err)
			m.layout = m.layout.SetError(fmt.Errorf("could not copy %s: %w", msg.Tool.URL, msg.Err))
			return m, nil
		}
		m.status = "Copied " + msg.Tool.URL
		return m, nil

	case detail.RenderedMsg, detail.RenderErrorMsg:
		return m, m.detail.Update(msg)

	case tea.MouseMsg:
		if m.state == StateDetail {
			return m, m.detail.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.state = StateQuitting
			return m, tea.Quit
		}

		switch m.state {
		case StateBrowse:
			return m.updateBrowse(msg)
		case StatePalette:
			return m.updatePalette(msg)
		case StateDetail:
			return m.updateDetail(msg)
		}
	}

	return m, nil
}

func (m *MainModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = StateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.TogglePalette):
		return m, m.openPalette(controller.ToggleSearch{})

	case key.Matches(msg, m.keys.Search):
		return m, m.openPalette(controller.OpenSearch{})

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusGrid {
			m.focus = focusSidebar
		} else {
			m.focus = focusGrid
		}
		return m, nil

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.dispatch(controller.ToggleFavoritesOnly{})

	case key.Matches(msg, m.keys.TagFree):
		m.dispatch(controller.SelectTag{Tag: catalog.TagFree})

	case key.Matches(msg, m.keys.TagFreemium):
		m.dispatch(controller.SelectTag{Tag: catalog.TagFreemium})

	case key.Matches(msg, m.keys.TagOpenSource):
		m.dispatch(controller.SelectTag{Tag: catalog.TagOpenSource})

	case key.Matches(msg, m.keys.Sort):
		m.dispatch(controller.SetSort{Mode: m.view.Sort.Next()})

	case key.Matches(msg, m.keys.Theme):
		m.dispatch(controller.ToggleTheme{})

	case key.Matches(msg, m.keys.Favorite):
		if tool, ok := selectedTool(m.grid); ok {
			m.dispatch(controller.ToggleFavorite{ID: tool.ID})
		}

	case key.Matches(msg, m.keys.Copy):
		if tool, ok := selectedTool(m.grid); ok {
			return m, m.copyURL(tool)
		}

	case key.Matches(msg, m.keys.Detail):
		if tool, ok := selectedTool(m.grid); ok {
			return m, m.showDetail(tool)
		}

	case key.Matches(msg, m.keys.Select):
		if m.focus == focusSidebar {
			m.dispatch(controller.SelectCategory{Category: m.sidebar.current()})
			m.focus = focusGrid
			return m, nil
		}
		if tool, ok := selectedTool(m.grid); ok {
			return m, m.open(tool)
		}

	case m.focus == focusSidebar && key.Matches(msg, m.keys.Up):
		m.sidebar.up()

	case m.focus == focusSidebar && key.Matches(msg, m.keys.Down):
		m.sidebar.down()

	default:
		if m.focus == focusGrid {
			var cmd tea.Cmd
			m.grid, cmd = m.grid.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *MainModel) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.TogglePalette):
		m.closePalette()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		tool, ok := m.palette.Selected()
		if !ok {
			return m, nil
		}
		m.logger.LogUserAction("palette_open", tool.Name)
		m.closePalette()
		return m, m.open(tool)
	}

	before := m.palette.Value()
	cmd := m.palette.Update(msg)
	if after := m.palette.Value(); after != before {
		m.dispatch(controller.SearchQueryChanged{Query: after})
		m.palette.SetResult(m.view.SearchResult)
	}
	return m, cmd
}

func (m *MainModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tool := m.detail.Tool()

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Quit):
		m.logger.LogStateTransition("MainModel", StateDetail.String(), StateBrowse.String())
		m.state = StateBrowse
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m, m.open(tool)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURL(tool)

	case key.Matches(msg, m.keys.Favorite):
		m.dispatch(controller.ToggleFavorite{ID: tool.ID})
		return m, m.detail.Show(tool, m.view.IsFavorite(tool.ID), m.view.Theme)
	}

	return m, m.detail.Update(msg)
}

// dispatch sends ev to the controller and redraws from the returned view.
// Errors go to the layout's error line; the session carries on.
func (m *MainModel) dispatch(ev controller.Event) {
	prevTheme := m.view.Theme

	v, err := m.ctrl.Dispatch(ev)
	m.view = v
	if err != nil {
		m.logger.Error("Event failed", "event", ev.EventName(), "error", err)
		m.layout = m.layout.SetError(err)
	} else {
		m.layout = m.layout.ClearError()
	}

	if v.Theme != prevTheme {
		m.applyTheme()
	}
	m.syncGrid()
}

// syncGrid reloads the grid, keeping the selected tool when it is still
// visible.
func (m *MainModel) syncGrid() {
	prev, hadSelection := selectedTool(m.grid)

	m.grid.SetItems(gridItems(m.view))

	idx := 0
	if hadSelection {
		for i, t := range m.view.Tools {
			if t.ID == prev.ID {
				idx = i
				break
			}
		}
	}
	if len(m.view.Tools) > 0 {
		m.grid.Select(idx)
	}
}

func (m *MainModel) applyTheme() {
	m.styles = styles.ForTheme(m.view.Theme)
	m.layout = m.layout.SetStyles(m.styles)
	m.grid.SetDelegate(newGridDelegate(m.styles))
	m.palette.SetStyles(m.styles)
	m.detail.SetStyles(m.styles)
	m.logger.Debug("Theme applied", "theme", m.view.Theme)
}

func (m *MainModel) openPalette(ev controller.Event) tea.Cmd {
	m.dispatch(ev)
	if !m.view.SearchOpen {
		return nil
	}
	m.logger.LogStateTransition("MainModel", m.state.String(), StatePalette.String())
	m.state = StatePalette
	cmd := m.palette.Open()
	m.palette.SetResult(m.view.SearchResult)
	return cmd
}

func (m *MainModel) closePalette() {
	m.dispatch(controller.CloseSearch{})
	m.palette.Close()
	m.logger.LogStateTransition("MainModel", StatePalette.String(), StateBrowse.String())
	m.state = StateBrowse
}

func (m *MainModel) showDetail(tool catalog.Tool) tea.Cmd {
	m.logger.LogStateTransition("MainModel", m.state.String(), StateDetail.String())
	m.state = StateDetail
	return m.detail.Show(tool, m.view.IsFavorite(tool.ID), m.view.Theme)
}

func (m *MainModel) open(tool catalog.Tool) tea.Cmd {
	m.logger.LogUserAction("open_url", tool.URL)
	if err := validation.ValidateToolURL(tool.URL); err != nil {
		return func() tea.Msg { return URLOpenedMsg{Tool: tool, Err: err} }
	}
	openURL := m.openURL
	return func() tea.Msg {
		return URLOpenedMsg{Tool: tool, Err: openURL(tool.URL)}
	}
}

func (m *MainModel) copyURL(tool catalog.Tool) tea.Cmd {
	m.logger.LogUserAction("copy_url", tool.URL)
	copyText := m.copyText
	return func() tea.Msg {
		return URLCopiedMsg{Tool: tool, Err: copyText(tool.URL)}
	}
}

func (m *MainModel) resize() {
	frameW, frameH := m.styles.Pane.GetFrameSize()

	mainWidth := max(m.layout.ContentWidth()-sidebarWidth-2*frameW, 20)
	mainHeight := max(m.layout.ContentHeight()-frameH, 5)

	m.grid.SetSize(mainWidth, mainHeight)
	m.palette.SetSize(mainWidth, m.layout.InputWidth())
	m.detail.SetSize(mainWidth, mainHeight)
	m.help.Width = m.layout.ContentWidth()

	m.logger.Debug("Layout resized", "main_width", mainWidth, "main_height", mainHeight)
}

func (m *MainModel) View() string {
	if m.state == StateQuitting {
		m.layout = m.layout.SetConfig(components.LayoutConfig{
			Title: "👋 Goodbye!",
		})
		return m.layout.Render("Thanks for using Toolbox!")
	}

	var helpText string
	switch m.state {
	case StatePalette:
		helpText = m.help.View(paletteKeys{m.keys})
	case StateDetail:
		helpText = m.help.View(detailKeys{m.keys})
	default:
		helpText = m.help.View(m.keys)
	}

	m.layout = m.layout.SetConfig(components.LayoutConfig{
		Title:    "🧰 Toolbox · " + m.view.Title,
		Subtitle: m.subtitle(),
		HelpText: helpText,
	})

	sidebar := m.sidebar.View(m.view, m.styles, m.state == StateBrowse && m.focus == focusSidebar)

	var main string
	switch m.state {
	case StatePalette:
		main = m.palette.View()
	case StateDetail:
		main = m.detail.View()
	default:
		main = m.viewGrid()
	}

	return m.layout.RenderBlock(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main))
}

func (m *MainModel) subtitle() string {
	s := m.view.CountLabel
	if m.view.Tag != "" {
		s += " · Tag: " + m.view.Tag.Label()
	}
	s += " · Sort: " + m.view.Sort.Label()
	if m.status != "" {
		s += " · " + m.status
	}
	return s
}

func (m *MainModel) viewGrid() string {
	pane := m.styles.Pane
	if m.focus == focusGrid {
		pane = m.styles.PaneFocused
	}
	pane = pane.Width(m.grid.Width())

	if m.view.Empty {
		return pane.Render(m.styles.Empty.Render(emptyStateText(m.view)))
	}
	return pane.Height(m.grid.Height()).Render(m.grid.View())
}

func emptyStateText(v controller.View) string {
	if v.FavoritesOnly {
		return "No favorites yet.\nPress space on a tool to add it."
	}
	return "No tools match these filters.\nTry another category or clear the tag with its number key."
}
