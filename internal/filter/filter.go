// Package filter turns the catalog and a filter state into the list of tools
// to display. Everything here is pure: inputs are never mutated and the same
// inputs always produce the same output.
package filter

import (
	"fmt"
	"sort"

	"toolbox/internal/catalog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortDefault SortMode = "default"
	SortName    SortMode = "name"
	SortPopular SortMode = "popular"
)

var sortModes = []SortMode{SortDefault, SortName, SortPopular}

// SortModes returns every sort mode in cycling order.
func SortModes() []SortMode {
	out := make([]SortMode, len(sortModes))
	copy(out, sortModes)
	return out
}

// ParseSortMode accepts "" as SortDefault.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	for _, m := range sortModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q (want default, name or popular)", s)
}

// Next returns the mode after m, wrapping around.
func (m SortMode) Next() SortMode {
	for i, mode := range sortModes {
		if mode == m {
			return sortModes[(i+1)%len(sortModes)]
		}
	}
	return SortDefault
}

func (m SortMode) Label() string {
	switch m {
	case SortName:
		return "Name (A-Z)"
	case SortPopular:
		return "Most popular"
	default:
		return "Default"
	}
}

// State is the set of active filters. The zero Tag means no tag filter.
type State struct {
	Category      catalog.Category
	Tag           catalog.Tag
	FavoritesOnly bool
	Sort          SortMode
}

func DefaultState() State {
	return State{Category: catalog.CategoryAll, Sort: SortDefault}
}

// FavoriteSet is the read side of the favorites collection.
type FavoriteSet interface {
	Has(id int) bool
}

// IDSet is a plain FavoriteSet.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Matches reports whether tool passes every active predicate in st.
// favorites may be nil when st.FavoritesOnly is false.
func Matches(tool catalog.Tool, st State, favorites FavoriteSet) bool {
	if st.Category != "" && st.Category != catalog.CategoryAll && tool.Category != st.Category {
		return false
	}
	if st.Tag != "" && !tool.HasTag(st.Tag) {
		return false
	}
	if st.FavoritesOnly && (favorites == nil || !favorites.Has(tool.ID)) {
		return false
	}
	return true
}

// Apply returns the tools matching st, ordered by st.Sort. The result is a
// new slice; tools is left untouched.
func Apply(tools []catalog.Tool, st State, favorites FavoriteSet) []catalog.Tool {
	out := make([]catalog.Tool, 0, len(tools))
	for _, t := range tools {
		if Matches(t, st, favorites) {
			out = append(out, t)
		}
	}

	switch st.Sort {
	case SortName:
		sortByName(out)
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popular && !out[j].Popular
		})
	}
	return out
}

func sortByName(tools []catalog.Tool) {
	// A Collator is not safe for concurrent use, so each call gets its own.
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(tools, func(i, j int) bool {
		return c.CompareString(tools[i].Name, tools[j].Name) < 0
	})
}
