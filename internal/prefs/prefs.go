// Package prefs is the durable local key-value store for client-owned
// state: filter/sort state, theme, language, remembered e-mail and the
// saved session tokens. Everything is best-effort: saving never fails
// observably and a missing or malformed file loads as defaults.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/go-ini/ini"

	"youthive/internal/listing"
)

const (
	sectionFilters = "filters"
	sectionUI      = "ui"
	sectionSession = "session"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the prefs file under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "youthive", "prefs.ini")
}

func (s *Store) load() *ini.File {
	f, err := ini.Load(s.path)
	if err != nil {
		// absent or unreadable is the same as empty
		return ini.Empty()
	}
	return f
}

func (s *Store) save(f *ini.File) {
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = f.SaveTo(s.path)
}

func (s *Store) setKey(section, key, value string) {
	f := s.load()
	f.Section(section).Key(key).SetValue(value)
	s.save(f)
}

func (s *Store) getKey(section, key string) string {
	return s.load().Section(section).Key(key).String()
}

func (s *Store) deleteKey(section, key string) {
	f := s.load()
	f.Section(section).DeleteKey(key)
	s.save(f)
}

// SaveFilters overwrites the persisted filter state.
func (s *Store) SaveFilters(state listing.FilterState) {
	f := s.load()
	sec := f.Section(sectionFilters)
	sec.Key("search").SetValue(state.Search)
	sec.Key("category").SetValue(state.Category)
	sec.Key("sort").SetValue(string(state.Sort))
	s.save(f)
}

// LoadFilters restores the persisted state; absent fields default.
func (s *Store) LoadFilters() listing.FilterState {
	sec := s.load().Section(sectionFilters)
	state := listing.FilterState{
		Search:   sec.Key("search").String(),
		Category: sec.Key("category").String(),
		Sort:     listing.SortKey(sec.Key("sort").String()),
	}
	return state.Normalize()
}

func (s *Store) Theme() string         { return s.getKey(sectionUI, "theme") }
func (s *Store) SetTheme(theme string) { s.setKey(sectionUI, "theme", theme) }

func (s *Store) Language() string        { return s.getKey(sectionUI, "language") }
func (s *Store) SetLanguage(lang string) { s.setKey(sectionUI, "language", lang) }

func (s *Store) RememberEmail() string         { return s.getKey(sectionSession, "remember_email") }
func (s *Store) SetRememberEmail(email string) { s.setKey(sectionSession, "remember_email", email) }
func (s *Store) ClearRememberEmail()           { s.deleteKey(sectionSession, "remember_email") }

func (s *Store) AccessToken() string  { return s.getKey(sectionSession, "access_token") }
func (s *Store) RefreshToken() string { return s.getKey(sectionSession, "refresh_token") }

func (s *Store) SaveSession(accessToken, refreshToken string) {
	f := s.load()
	sec := f.Section(sectionSession)
	sec.Key("access_token").SetValue(accessToken)
	sec.Key("refresh_token").SetValue(refreshToken)
	s.save(f)
}

func (s *Store) ClearSession() {
	f := s.load()
	sec := f.Section(sectionSession)
	sec.DeleteKey("access_token")
	sec.DeleteKey("refresh_token")
	s.save(f)
}
