// Package ui is the checklist window, its menus, the tray icon and the
// settings dialog.
//
// Everything here runs on the fyne UI goroutine. Work arriving from other
// goroutines (the refresh ticker, hotkey listeners) is handed over with
// fyne.Do.
package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/shu-go/aot/internal/config"
	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/hotkeys"
	"github.com/shu-go/aot/internal/locale"
	"github.com/shu-go/aot/internal/pin"
	"github.com/shu-go/aot/internal/window"
)

// RefreshInterval is how often the window list is rebuilt.
const RefreshInterval = 5 * time.Second

// Desktop is the window system as seen by the UI.
type Desktop interface {
	window.Source
	pin.Toggler
	Alive(h window.Handle) bool
	Foreground() (window.Handle, string)
}

type Options struct {
	Desktop Desktop
	Config  *config.Store
	Hotkeys hotkeys.Backend

	// Executable is revealed by File > Open file location.
	Executable string
	Reveal     func(path string) error
}

type App struct {
	fa   fyne.App
	win  fyne.Window
	desk Desktop
	cfg  *config.Store
	tr   *locale.Translator

	enum *window.Enumerator
	pins *pin.Store
	keys *hotkeys.Bindings

	exe    string
	reveal func(string) error

	titleLabel  *widget.Label
	hotkeyLabel *widget.Label
	list        *fyne.Container
	listBG      *canvas.Rectangle
	unpinBtn    *widget.Button
	checks      map[window.Handle]*widget.Check

	settings *settingsDialog
	about    fyne.Window

	hasTray      bool
	trayNotified bool

	stop     chan struct{}
	started  bool
	quitting bool
}

func New(fa fyne.App, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg, _ = config.Open("")
	}

	a := &App{
		fa:   fa,
		desk: opts.Desktop,
		cfg:  cfg,
		tr:   locale.New(cfg.Current().Language),
		enum: &window.Enumerator{
			Source:      opts.Desktop,
			Exclude:     append([]string{locale.AppTitle}, locale.DialogTitles()...),
			ProcessName: window.ProcessName,
		},
		pins:   pin.NewStore(opts.Desktop),
		keys:   hotkeys.NewBindings(opts.Hotkeys),
		exe:    opts.Executable,
		reveal: opts.Reveal,
		checks: make(map[window.Handle]*widget.Check),
		stop:   make(chan struct{}),
	}

	a.win = fa.NewWindow(a.tr.T("title"))
	a.win.Resize(fyne.NewSize(380, 500))
	a.win.SetContent(a.buildContent())
	a.win.SetMainMenu(a.buildMainMenu())
	a.win.SetMaster()
	a.win.SetCloseIntercept(a.closeRequested)
	a.setupTray()
	a.applyTheme(cfg.Current().Theme)

	return a
}

// Start registers the hotkeys, fills the list, starts the refresh ticker and
// shows the window.
func (a *App) Start() {
	if a.started {
		return
	}
	a.started = true

	cur := a.cfg.Current()
	if err := a.registerHotkeys(cur.HotkeyPin, cur.HotkeyUnpin); err != nil {
		debuglog.Printf("hotkeys: %v", err)
	}
	a.updateHotkeyLabel()

	a.Refresh()
	go a.tick()

	a.win.Show()
}

// Run starts the app and blocks until it quits.
func (a *App) Run() {
	a.Start()
	a.fa.Run()
}

func (a *App) tick() {
	t := time.NewTicker(RefreshInterval)
	defer t.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-t.C:
			fyne.Do(a.Refresh)
		}
	}
}

// Quit unregisters the hotkeys, unpins everything this app pinned and exits.
func (a *App) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	close(a.stop)

	if err := a.keys.Unregister(); err != nil {
		debuglog.Printf("unregister hotkeys: %v", err)
	}
	if err := a.pins.UnpinAll(); err != nil {
		debuglog.Printf("unpin on exit: %v", err)
	}

	a.fa.Quit()
}

func (a *App) closeRequested() {
	if a.cfg.Current().CloseToTray && a.hasTray {
		a.win.Hide()
		if !a.trayNotified {
			a.trayNotified = true
			a.fa.SendNotification(fyne.NewNotification(a.tr.T("title"), a.tr.T("msg_tray_hidden")))
		}
		return
	}
	a.Quit()
}

func (a *App) showWindow() {
	a.win.Show()
	a.win.RequestFocus()
}

// relabel redraws every text after a language change.
func (a *App) relabel() {
	a.win.SetTitle(a.tr.T("title"))
	a.titleLabel.SetText(a.tr.T("select_window"))
	a.updateHotkeyLabel()
	a.unpinBtn.SetText(a.tr.T("unpin_all"))
	a.win.SetMainMenu(a.buildMainMenu())
	a.setupTray()
}
