package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/shu-go/aot/internal/config"
	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/locale"
)

var errEmptyHotkey = errors.New("empty hotkey")

// ApplySettings rebinds the hotkeys and saves st. When the hotkeys are empty
// or cannot be registered nothing is applied, the previous hotkeys stay active
// and the error is returned.
func (a *App) ApplySettings(st config.Settings) error {
	st.HotkeyPin = strings.ToLower(strings.TrimSpace(st.HotkeyPin))
	st.HotkeyUnpin = strings.ToLower(strings.TrimSpace(st.HotkeyUnpin))
	if st.HotkeyPin == "" || st.HotkeyUnpin == "" {
		return errEmptyHotkey
	}
	if !st.Language.Valid() {
		st.Language = a.tr.Language()
	}

	if err := a.registerHotkeys(st.HotkeyPin, st.HotkeyUnpin); err != nil {
		return err
	}

	if err := a.cfg.SaveSettings(st); err != nil {
		debuglog.Printf("save settings: %v", err)
	}

	if st.Language != a.tr.Language() {
		a.tr = locale.New(st.Language)
		a.relabel()
	} else {
		a.updateHotkeyLabel()
	}
	return nil
}

type settingsDialog struct {
	win   fyne.Window
	pin   *widget.Entry
	unpin *widget.Entry
	tray  *widget.Check
	lang  *widget.RadioGroup
	save  *widget.Button
}

func (a *App) showSettings() {
	if a.settings != nil {
		a.settings.win.RequestFocus()
		return
	}

	d := &settingsDialog{win: a.fa.NewWindow(a.tr.T("settings_title"))}
	d.win.SetFixedSize(true)
	d.win.Resize(fyne.NewSize(450, 350))

	cur := a.cfg.Settings()
	langNames := map[locale.Language]string{
		locale.Vietnamese: a.tr.T("settings_vietnamese"),
		locale.English:    a.tr.T("settings_english"),
	}

	d.pin = widget.NewEntry()
	d.pin.SetText(cur.HotkeyPin)
	d.unpin = widget.NewEntry()
	d.unpin.SetText(cur.HotkeyUnpin)

	d.tray = widget.NewCheck(a.tr.T("settings_close_tray"), nil)
	d.tray.Checked = cur.CloseToTray

	d.lang = widget.NewRadioGroup([]string{langNames[locale.Vietnamese], langNames[locale.English]}, nil)
	d.lang.Selected = langNames[cur.Language]

	d.save = widget.NewButton(a.tr.T("btn_save"), func() {
		st := config.Settings{
			HotkeyPin:   d.pin.Text,
			HotkeyUnpin: d.unpin.Text,
			CloseToTray: d.tray.Checked,
			Language:    locale.Vietnamese,
		}
		if d.lang.Selected == langNames[locale.English] {
			st.Language = locale.English
		}

		if err := a.ApplySettings(st); err != nil {
			if errors.Is(err, errEmptyHotkey) {
				a.showError(a.tr.T("msg_empty_hotkey"), d.win)
			} else {
				a.showError(a.tr.Tf("msg_invalid_hotkey", map[string]any{"Err": err}), d.win)
			}
			return
		}
		d.win.Close()
	})
	d.save.Importance = widget.HighImportance
	d.save.Disable()
	cancel := widget.NewButton(a.tr.T("btn_cancel"), d.win.Close)

	changed := func() { d.save.Enable() }
	d.pin.OnChanged = func(string) { changed() }
	d.unpin.OnChanged = func(string) { changed() }
	d.tray.OnChanged = func(bool) { changed() }
	d.lang.OnChanged = func(string) { changed() }

	help := widget.NewLabelWithStyle(a.tr.T("settings_example"), fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	hotkeyForm := container.New(layout.NewFormLayout(),
		widget.NewLabel(a.tr.T("settings_pin")), d.pin,
		widget.NewLabel(a.tr.T("settings_unpin")), d.unpin,
	)

	d.win.SetContent(container.NewBorder(
		nil,
		container.NewHBox(d.save, cancel),
		nil, nil,
		container.NewVBox(
			widget.NewCard(a.tr.T("settings_hotkey"), "", container.NewVBox(hotkeyForm, help)),
			d.tray,
			widget.NewCard(a.tr.T("settings_language"), "", d.lang),
		),
	))
	d.win.SetOnClosed(func() { a.settings = nil })

	a.settings = d
	d.win.Show()
}
