// Package controller owns the browsing session: the filter state, the search
// palette and the preference store. Every interaction is an Event passed to
// Dispatch, which applies it and returns a freshly derived View.
//
// The controller is not safe for concurrent use. The TUI only touches it from
// its Update loop.
package controller

import (
	"errors"
	"fmt"

	"toolbox/internal/catalog"
	"toolbox/internal/filter"
	"toolbox/internal/logging"
	"toolbox/internal/prefs"
	"toolbox/internal/search"
)

// ErrUnknownEvent is returned by Dispatch for events it does not handle.
var ErrUnknownEvent = errors.New("unknown event")

type Controller struct {
	catalog *catalog.Catalog
	tools   []catalog.Tool
	counts  map[catalog.Category]int
	prefs   *prefs.Store
	logger  *logging.AppLogger

	state filter.State

	searchOpen   bool
	searchQuery  string
	searchResult search.Result
}

func New(cat *catalog.Catalog, p *prefs.Store, logger *logging.AppLogger) *Controller {
	return &Controller{
		catalog: cat,
		tools:   cat.Tools(),
		counts:  cat.CategoryCounts(),
		prefs:   p,
		logger:  logger.WithComponent("controller"),
		state:   filter.DefaultState(),
	}
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Controller) Prefs() *prefs.Store {
	return c.prefs
}

func (c *Controller) State() filter.State {
	return c.state
}

// Persist retries preference writes that failed earlier in the session.
func (c *Controller) Persist() error {
	if err := c.prefs.Persist(); err != nil {
		return fmt.Errorf("failed to persist preferences: %w", err)
	}
	return nil
}

// Dispatch applies ev and returns the resulting View. A storage failure does
// not roll the mutation back: the View reflects it and the error says it was
// not saved. For an unknown event the state is unchanged and the current View
// is returned with ErrUnknownEvent.
func (c *Controller) Dispatch(ev Event) (View, error) {
	if ev == nil {
		return c.View(), ErrUnknownEvent
	}
	c.logger.LogEvent(ev.EventName(), ev)

	var err error
	switch e := ev.(type) {
	case SelectCategory:
		c.selectCategory(e.Category)
	case SelectTag:
		c.selectTag(e.Tag)
	case ToggleFavorite:
		err = c.toggleFavorite(e.ID)
	case SetSort:
		err = c.setSort(e.Mode)
	case ToggleFavoritesOnly:
		c.toggleFavoritesOnly()
	case SetTheme:
		err = c.setTheme(e.Theme)
	case ToggleTheme:
		err = c.setTheme(c.prefs.GetTheme().Toggle())
	case OpenSearch:
		c.openSearch()
	case CloseSearch:
		c.closeSearch()
	case ToggleSearch:
		if c.searchOpen {
			c.closeSearch()
		} else {
			c.openSearch()
		}
	case SearchQueryChanged:
		c.searchOpen = true
		c.runSearch(e.Query)
	default:
		return c.View(), fmt.Errorf("%w: %s (%T)", ErrUnknownEvent, ev.EventName(), ev)
	}

	return c.View(), err
}

func (c *Controller) selectCategory(cat catalog.Category) {
	if cat == "" {
		cat = catalog.CategoryAll
	}
	c.logger.LogStateTransition("category", string(c.state.Category), string(cat))
	c.state.Category = cat
	c.state.FavoritesOnly = false
}

func (c *Controller) selectTag(tag catalog.Tag) {
	if tag == c.state.Tag {
		tag = ""
	}
	c.logger.LogStateTransition("tag", string(c.state.Tag), string(tag))
	c.state.Tag = tag
}

func (c *Controller) toggleFavorite(id int) error {
	now, err := c.prefs.ToggleFavorite(id)
	c.logger.LogUserAction("toggle_favorite", fmt.Sprintf("id=%d favorite=%t", id, now))
	if err != nil {
		return fmt.Errorf("favorite %d not saved: %w", id, err)
	}
	return nil
}

func (c *Controller) setSort(mode filter.SortMode) error {
	m, err := filter.ParseSortMode(string(mode))
	if err != nil {
		return err
	}
	c.logger.LogStateTransition("sort", string(c.state.Sort), string(m))
	c.state.Sort = m
	return nil
}

func (c *Controller) toggleFavoritesOnly() {
	c.state.FavoritesOnly = !c.state.FavoritesOnly
	c.state.Category = catalog.CategoryAll
	c.logger.LogStateTransition("favorites_only", fmt.Sprint(!c.state.FavoritesOnly), fmt.Sprint(c.state.FavoritesOnly))
}

func (c *Controller) setTheme(t prefs.Theme) error {
	from := c.prefs.GetTheme()
	if err := c.prefs.SetTheme(t); err != nil {
		if errors.Is(err, prefs.ErrInvalidTheme) {
			return err
		}
		return fmt.Errorf("theme not saved: %w", err)
	}
	c.logger.LogStateTransition("theme", string(from), string(t))
	return nil
}

func (c *Controller) openSearch() {
	c.searchOpen = true
	c.runSearch("")
}

func (c *Controller) closeSearch() {
	c.searchOpen = false
	c.searchQuery = ""
	c.searchResult = search.Result{}
}

func (c *Controller) runSearch(query string) {
	c.searchQuery = query
	c.searchResult = search.Search(c.tools, query)
}

// View derives the current View without changing any state.
func (c *Controller) View() View {
	tools := filter.Apply(c.tools, c.state, c.prefs)

	favs := filter.NewIDSet(c.prefs.Favorites()...)

	counts := make(map[catalog.Category]int, len(c.counts))
	for k, v := range c.counts {
		counts[k] = v
	}

	return View{
		Title:          title(c.state),
		CountLabel:     CountLabel(len(tools)),
		Tools:          tools,
		Empty:          len(tools) == 0,
		FavoritesOnly:  c.state.FavoritesOnly,
		Category:       c.state.Category,
		Tag:            c.state.Tag,
		Sort:           c.state.Sort,
		Theme:          c.prefs.GetTheme(),
		Favorites:      favs,
		CategoryCounts: counts,
		SearchOpen:     c.searchOpen,
		SearchQuery:    c.searchQuery,
		SearchResult:   c.searchResult,
	}
}
