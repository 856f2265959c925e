package config

import (
	"github.com/shu-go/aot/internal/locale"
	"github.com/shu-go/aot/internal/theme"
)

// Settings are the fields edited in the settings dialog.
type Settings struct {
	HotkeyPin   string
	HotkeyUnpin string
	CloseToTray bool
	Language    locale.Language
}

// Store keeps the last known config and writes it back on every change.
// A failed write keeps the new values for the running session.
type Store struct {
	path string
	cur  Config
}

// Open loads path into a new Store. An empty path gives a session-only
// store. The error is informational; the store is always usable.
func Open(path string) (*Store, error) {
	s := &Store{path: path, cur: Default()}
	if path == "" {
		return s, nil
	}

	cfg, err := Load(path)
	s.cur = cfg
	return s, err
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Current() Config {
	return s.cur
}

func (s *Store) Settings() Settings {
	return Settings{
		HotkeyPin:   s.cur.HotkeyPin,
		HotkeyUnpin: s.cur.HotkeyUnpin,
		CloseToTray: s.cur.CloseToTray,
		Language:    s.cur.Language,
	}
}

// SaveSettings merges st with the current theme and saves.
func (s *Store) SaveSettings(st Settings) error {
	s.cur = Config{
		Theme:       s.cur.Theme,
		HotkeyPin:   st.HotkeyPin,
		HotkeyUnpin: st.HotkeyUnpin,
		CloseToTray: st.CloseToTray,
		Language:    st.Language,
	}
	return s.save()
}

func (s *Store) SetTheme(t theme.Name) error {
	s.cur.Theme = t
	return s.save()
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	return Save(s.path, s.cur)
}
