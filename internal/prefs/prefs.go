// Package prefs owns the user's theme and favorites and keeps them in sync
// with a storage.Store.
//
// Nothing read from storage is allowed to fail startup: a malformed favorites
// value becomes an empty set and a missing theme falls back to the system
// preference, then to light. Writes are the opposite: every mutation is
// written through immediately and a failed write is returned to the caller.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"

	"toolbox/internal/logging"
	"toolbox/internal/storage"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrInvalidTheme is returned by SetTheme for values other than light/dark.
var ErrInvalidTheme = errors.New("invalid theme")

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// SystemThemeFunc reports the platform light/dark preference. ok is false
// when no signal is available.
type SystemThemeFunc func() (theme Theme, ok bool)

// NoSystemTheme never reports a preference.
func NoSystemTheme() (Theme, bool) {
	return "", false
}

// Store is the in-memory view of the persisted preferences. It is not safe
// for concurrent use; callers serialize access.
type Store struct {
	kv     storage.Store
	logger *logging.AppLogger

	theme Theme

	favorites []int // insertion order, as persisted
	favSet    map[int]struct{}

	// set when a write failed; Persist retries only these
	themePending     bool
	favoritesPending bool
}

// Load reads both keys from kv. It never fails.
func Load(kv storage.Store, system SystemThemeFunc, logger *logging.AppLogger) *Store {
	if system == nil {
		system = NoSystemTheme
	}

	s := &Store{
		kv:     kv,
		logger: logger,
		theme:  ThemeLight,
		favSet: make(map[int]struct{}),
	}

	s.loadTheme(system)
	s.loadFavorites()
	return s
}

func (s *Store) loadTheme(system SystemThemeFunc) {
	raw, ok, err := s.kv.Get(storage.KeyTheme)
	if err != nil {
		s.logger.Warn("Could not read saved theme, using default", "error", err)
	}
	if ok {
		if t, valid := ParseTheme(raw); valid {
			s.theme = t
			s.logger.Debug("Theme restored from storage", "theme", t)
			return
		}
		s.logger.Warn("Ignoring unknown saved theme", "value", raw)
	}

	if t, ok := system(); ok {
		s.theme = t
		s.logger.Debug("Theme from system preference", "theme", t)
		return
	}
	s.logger.Debug("No theme signal, defaulting", "theme", s.theme)
}

func (s *Store) loadFavorites() {
	raw, ok, err := s.kv.Get(storage.KeyFavorites)
	if err != nil {
		s.logger.Warn("Could not read saved favorites, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	ids, err := decodeFavorites(raw)
	if err != nil {
		s.logger.Warn("Saved favorites are malformed, starting empty", "error", err)
		return
	}
	s.replaceFavorites(ids)
	s.logger.Debug("Favorites restored", "count", len(s.favorites))
}

// ReloadFavorites replaces the in-memory favorites with what storage holds
// now, picking up changes saved by other toolbox processes. It is a no-op
// while a failed write is pending, and when storage is unreadable or holds
// malformed data.
func (s *Store) ReloadFavorites() {
	if s.favoritesPending {
		return
	}

	raw, ok, err := s.kv.Get(storage.KeyFavorites)
	if err != nil {
		s.logger.Warn("Could not re-read favorites, keeping session copy", "error", err)
		return
	}
	if !ok {
		s.replaceFavorites(nil)
		return
	}

	ids, err := decodeFavorites(raw)
	if err != nil {
		s.logger.Debug("Stored favorites are malformed, keeping session copy", "error", err)
		return
	}
	s.replaceFavorites(ids)
}

func (s *Store) replaceFavorites(ids []int) {
	s.favorites = nil
	s.favSet = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.add(id)
	}
}

func decodeFavorites(raw string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("expected a JSON array of tool ids: %w", err)
	}
	return ids, nil
}

func (s *Store) GetTheme() Theme {
	return s.theme
}

// SetTheme switches the theme and writes it through. On a storage failure
// the new theme stays active for this session and the error is returned.
func (s *Store) SetTheme(t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	s.theme = t
	err := s.persistTheme()
	s.themePending = err != nil
	return err
}

// IsFavorite reports whether id is in the favorites set.
func (s *Store) IsFavorite(id int) bool {
	_, ok := s.favSet[id]
	return ok
}

// Has is IsFavorite under the name the filter package expects.
func (s *Store) Has(id int) bool {
	return s.IsFavorite(id)
}

// ToggleFavorite re-reads the stored set, flips id's membership and writes
// the set back, so favorites saved by another process in the meantime are
// kept. Ids are not checked against any catalog. The returned bool is the new
// membership; it is valid even when err is non-nil.
func (s *Store) ToggleFavorite(id int) (bool, error) {
	s.ReloadFavorites()

	var now bool
	if s.IsFavorite(id) {
		s.remove(id)
	} else {
		s.add(id)
		now = true
	}

	err := s.persistFavorites()
	s.favoritesPending = err != nil
	return now, err
}

// Favorites returns the favorite ids in the order they were added.
func (s *Store) Favorites() []int {
	out := make([]int, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *Store) FavoriteCount() int {
	return len(s.favorites)
}

// Persist retries the writes that failed since the last successful one.
// Mutations are already written through, so with nothing pending it writes
// nothing and cannot overwrite what other processes saved.
func (s *Store) Persist() error {
	var errs []error
	if s.favoritesPending {
		if err := s.persistFavorites(); err != nil {
			errs = append(errs, err)
		} else {
			s.favoritesPending = false
		}
	}
	if s.themePending {
		if err := s.persistTheme(); err != nil {
			errs = append(errs, err)
		} else {
			s.themePending = false
		}
	}
	return errors.Join(errs...)
}

// Pending reports whether a failed write is waiting for Persist.
func (s *Store) Pending() bool {
	return s.favoritesPending || s.themePending
}

func (s *Store) persistTheme() error {
	if err := s.kv.Set(storage.KeyTheme, string(s.theme)); err != nil {
		s.logger.Error("Failed to save theme", "theme", s.theme, "error", err)
		return err
	}
	return nil
}

func (s *Store) persistFavorites() error {
	ids := s.favorites
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.kv.Set(storage.KeyFavorites, string(data)); err != nil {
		s.logger.Error("Failed to save favorites", "count", len(ids), "error", err)
		return err
	}
	return nil
}

func (s *Store) add(id int) {
	if _, ok := s.favSet[id]; ok {
		return
	}
	s.favSet[id] = struct{}{}
	s.favorites = append(s.favorites, id)
}

func (s *Store) remove(id int) {
	delete(s.favSet, id)
	for i, fid := range s.favorites {
		if fid == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return
		}
	}
}
