package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/theme"
)

var themeLabels = map[theme.Name]string{
	theme.White: "menu_white",
	theme.Gray:  "menu_gray",
	theme.Black: "menu_black",
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	exit := fyne.NewMenuItem(a.tr.T("menu_exit"), a.Quit)
	exit.IsQuit = true

	file := fyne.NewMenu(a.tr.T("menu_file"),
		fyne.NewMenuItem(a.tr.T("menu_open_location"), a.openFileLocation),
		fyne.NewMenuItem(a.tr.T("menu_about"), a.showAbout),
		fyne.NewMenuItemSeparator(),
		exit,
	)

	current := a.cfg.Current().Theme
	var themeItems []*fyne.MenuItem
	for _, n := range theme.Names {
		item := fyne.NewMenuItem(a.tr.T(themeLabels[n]), func() {
			a.ChangeTheme(n)
		})
		item.Checked = n == current
		themeItems = append(themeItems, item)
	}
	themes := fyne.NewMenu(a.tr.T("menu_theme"), themeItems...)

	settings := fyne.NewMenu(a.tr.T("menu_settings"),
		fyne.NewMenuItem(a.tr.T("settings_title")+"…", a.showSettings),
		fyne.NewMenuItem(a.tr.T("menu_refresh"), a.Refresh),
	)

	return fyne.NewMainMenu(file, themes, settings)
}

func (a *App) setupTray() {
	desk, ok := a.fa.(desktop.App)
	if !ok {
		return
	}
	a.hasTray = true

	exit := fyne.NewMenuItem(a.tr.T("tray_exit"), a.Quit)
	exit.IsQuit = true
	desk.SetSystemTrayMenu(fyne.NewMenu(a.tr.T("title"),
		fyne.NewMenuItem(a.tr.T("tray_open"), a.showWindow),
		exit,
	))
	desk.SetSystemTrayIcon(fynetheme.ComputerIcon())
}

// ChangeTheme applies and saves theme n.
func (a *App) ChangeTheme(n theme.Name) {
	if err := a.cfg.SetTheme(n); err != nil {
		debuglog.Printf("save theme: %v", err)
	}
	a.applyTheme(n)
	a.win.SetMainMenu(a.buildMainMenu())
}

func (a *App) openFileLocation() {
	if a.reveal == nil || a.exe == "" {
		return
	}
	if err := a.reveal(a.exe); err != nil {
		a.showError(a.tr.Tf("msg_cannot_open", map[string]any{"Err": err}), a.win)
	}
}

// showError shows msg in fyne's warning dialog over parent.
func (a *App) showError(msg string, parent fyne.Window) {
	dialog.ShowError(errors.New(msg), parent)
}

func (a *App) showAbout() {
	if a.about != nil {
		a.about.RequestFocus()
		return
	}

	w := a.fa.NewWindow(a.tr.T("about_title"))
	w.SetFixedSize(true)
	w.Resize(fyne.NewSize(350, 150))

	name := widget.NewLabelWithStyle(a.tr.T("about_app_name"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	version := widget.NewLabelWithStyle(a.tr.T("about_version"), fyne.TextAlignCenter, fyne.TextStyle{})
	author := widget.NewLabelWithStyle(a.tr.T("about_author"), fyne.TextAlignCenter, fyne.TextStyle{})
	ok := widget.NewButton("OK", w.Close)

	w.SetContent(container.NewBorder(container.NewVBox(name, version, author), ok, nil, nil))
	w.SetOnClosed(func() { a.about = nil })
	a.about = w
	w.Show()
}
