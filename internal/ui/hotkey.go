package ui

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/shu-go/aot/internal/locale"
)

// registerHotkeys (re)binds the global shortcuts. Their callbacks arrive on
// listener goroutines and are moved to the UI goroutine before doing anything.
func (a *App) registerHotkeys(pin, unpin string) error {
	return a.keys.Register(pin, unpin,
		func() { fyne.Do(a.PinForeground) },
		func() { fyne.Do(a.UnpinForeground) },
	)
}

// PinForeground pins the window that has keyboard focus.
func (a *App) PinForeground() {
	a.setForeground(true)
}

// UnpinForeground unpins the window that has keyboard focus.
func (a *App) UnpinForeground() {
	a.setForeground(false)
}

func (a *App) setForeground(on bool) {
	h, title := a.desk.Foreground()
	if h == 0 || strings.TrimSpace(title) == "" || title == locale.AppTitle {
		return
	}

	if err := a.pins.SetPinned(h, on); err != nil {
		logToggleError(h, on, err)
		return
	}
	a.Refresh()
}

func (a *App) updateHotkeyLabel() {
	pin, unpin := a.keys.Active()
	if pin == "" {
		cur := a.cfg.Current()
		pin, unpin = cur.HotkeyPin, cur.HotkeyUnpin
	}
	a.hotkeyLabel.SetText(a.tr.Tf("hotkey_label", map[string]any{
		"Pin":   pin,
		"Unpin": unpin,
	}))
}
