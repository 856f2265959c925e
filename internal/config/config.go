// Package config loads and saves the per-user settings file.
package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/shu-go/aot/internal/locale"
	"github.com/shu-go/aot/internal/theme"
)

const (
	DefaultHotkeyPin   = "ctrl+shift+p"
	DefaultHotkeyUnpin = "ctrl+shift+u"
)

type Config struct {
	Theme       theme.Name      `json:"theme"`
	HotkeyPin   string          `json:"hotkey_pin"`
	HotkeyUnpin string          `json:"hotkey_unpin"`
	CloseToTray bool            `json:"close_to_tray"`
	Language    locale.Language `json:"language"`
}

func Default() Config {
	return Config{
		Theme:       theme.White,
		HotkeyPin:   DefaultHotkeyPin,
		HotkeyUnpin: DefaultHotkeyUnpin,
		CloseToTray: false,
		Language:    locale.Vietnamese,
	}
}

// DefaultPath is %LOCALAPPDATA%\AOT_AlwaysOnTop\config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate the local app data directory")
	}
	return filepath.Join(dir, "AOT_AlwaysOnTop", "config.json"), nil
}

// Load reads path over the defaults. Every key is applied on its own: a
// missing key, a value of the wrong type or an unknown theme/language leaves
// that field at its default. The returned Config is always usable; the error
// only explains what was ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read %s", path)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}

	var errs []error
	field := func(key string, dst any) bool {
		v, ok := raw[key]
		if !ok {
			return false
		}
		if err := json.Unmarshal(v, dst); err != nil {
			errs = append(errs, errors.Wrapf(err, "%s", key))
			return false
		}
		return true
	}

	var t theme.Name
	if field("theme", &t) {
		if t.Valid() {
			cfg.Theme = t
		} else {
			errs = append(errs, errors.Errorf("theme: unknown value %q", t))
		}
	}

	var s string
	if field("hotkey_pin", &s) && s != "" {
		cfg.HotkeyPin = s
	}
	s = ""
	if field("hotkey_unpin", &s) && s != "" {
		cfg.HotkeyUnpin = s
	}

	var b bool
	if field("close_to_tray", &b) {
		cfg.CloseToTray = b
	}

	var l locale.Language
	if field("language", &l) {
		if l.Valid() {
			cfg.Language = l
		} else {
			errs = append(errs, errors.Errorf("language: unknown value %q", l))
		}
	}

	if len(errs) > 0 {
		return cfg, errors.Wrapf(stderrors.Join(errs...), "ignored values in %s", path)
	}
	return cfg, nil
}

// Encode writes cfg as the indented JSON stored in the config file.
func Encode(w io.Writer, cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return nil
}

// Save writes cfg to a temporary file next to path and renames it over path,
// so a crash never leaves a half-written file behind.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
