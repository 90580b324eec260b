package controller

import (
	"toolbox/internal/catalog"
	"toolbox/internal/filter"
	"toolbox/internal/prefs"
)

// Event is anything Dispatch can consume. The set handled by Dispatch is
// listed below; any other implementation yields ErrUnknownEvent.
type Event interface {
	EventName() string
}

// SelectCategory narrows the list to one category and leaves favorites mode.
type SelectCategory struct {
	Category catalog.Category
}

// SelectTag sets the tag filter. Selecting the active tag again clears it.
type SelectTag struct {
	Tag catalog.Tag
}

type ToggleFavorite struct {
	ID int
}

type SetSort struct {
	Mode filter.SortMode
}

// ToggleFavoritesOnly flips favorites mode and resets the category to all.
type ToggleFavoritesOnly struct{}

type SetTheme struct {
	Theme prefs.Theme
}

type ToggleTheme struct{}

// OpenSearch opens the palette with an empty query.
type OpenSearch struct{}

// CloseSearch closes the palette and forgets the query.
type CloseSearch struct{}

// ToggleSearch is the keyboard shortcut: open when closed, close when open.
type ToggleSearch struct{}

// SearchQueryChanged reruns the search. It opens the palette if needed.
type SearchQueryChanged struct {
	Query string
}

func (SelectCategory) EventName() string      { return "select_category" }
func (SelectTag) EventName() string           { return "select_tag" }
func (ToggleFavorite) EventName() string      { return "toggle_favorite" }
func (SetSort) EventName() string             { return "set_sort" }
func (ToggleFavoritesOnly) EventName() string { return "toggle_favorites_only" }
func (SetTheme) EventName() string            { return "set_theme" }
func (ToggleTheme) EventName() string         { return "toggle_theme" }
func (OpenSearch) EventName() string          { return "open_search" }
func (CloseSearch) EventName() string         { return "close_search" }
func (ToggleSearch) EventName() string        { return "toggle_search" }
func (SearchQueryChanged) EventName() string  { return "search_query_changed" }
