package controller

import (
	"fmt"

	"toolbox/internal/catalog"
	"toolbox/internal/filter"
	"toolbox/internal/prefs"
	"toolbox/internal/search"
)

// FavoritesTitle replaces the category label while favorites mode is on.
const FavoritesTitle = "Favorites"

// View is everything a renderer needs for one frame. It is a snapshot; later
// events do not change it.
type View struct {
	Title      string
	CountLabel string
	Tools      []catalog.Tool
	// Empty is true when the empty state replaces the grid.
	Empty bool

	FavoritesOnly bool
	Category      catalog.Category
	Tag           catalog.Tag
	Sort          filter.SortMode
	Theme         prefs.Theme
	Favorites     filter.IDSet

	// CategoryCounts are catalog totals and ignore every filter.
	CategoryCounts map[catalog.Category]int

	SearchOpen   bool
	SearchQuery  string
	SearchResult search.Result
}

// IsFavorite reports whether id was a favorite when the view was built.
func (v View) IsFavorite(id int) bool {
	return v.Favorites.Has(id)
}

func title(st filter.State) string {
	if st.FavoritesOnly {
		return FavoritesTitle
	}
	if st.Category == catalog.CategoryAll || !st.Category.Known() {
		return catalog.AllToolsLabel
	}
	return st.Category.Label()
}

// CountLabel formats n with a singular or plural noun.
func CountLabel(n int) string {
	if n == 1 {
		return "1 tool"
	}
	return fmt.Sprintf("%d tools", n)
}
