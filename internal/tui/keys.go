package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	SwitchFocus   key.Binding
	Select        key.Binding
	Favorite      key.Binding
	FavoritesOnly key.Binding
	TagFree       key.Binding
	TagFreemium   key.Binding
	TagOpenSource key.Binding
	Sort          key.Binding
	Theme         key.Binding
	Copy          key.Binding
	Detail        key.Binding
	Search        key.Binding
	TogglePalette key.Binding
	Close         key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		SwitchFocus:   key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "sidebar/grid")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/open")),
		Favorite:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "favorite")),
		FavoritesOnly: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites")),
		TagFree:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "free")),
		TagFreemium:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "freemium")),
		TagOpenSource: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "open source")),
		Sort:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Copy:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
		Detail:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		TogglePalette: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "search")),
		Close:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Select, k.Favorite, k.FavoritesOnly, k.Sort, k.Theme, k.Detail, k.TogglePalette, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchFocus, k.Select},
		{k.Favorite, k.FavoritesOnly, k.TagFree, k.TagFreemium, k.TagOpenSource},
		{k.Sort, k.Theme, k.Copy, k.Detail},
		{k.Search, k.TogglePalette, k.Close, k.Quit, k.ForceQuit},
	}
}

// paletteKeys is the help shown while the palette is open.
type paletteKeys struct{ KeyMap }

func (k paletteKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close, k.TogglePalette}
}

func (k paletteKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type detailKeys struct{ KeyMap }

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Copy, k.Favorite, k.Close}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
