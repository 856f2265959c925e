package ui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shu-go/nmfmt"

	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/window"
)

func (a *App) buildContent() fyne.CanvasObject {
	a.titleLabel = widget.NewLabelWithStyle(a.tr.T("select_window"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.hotkeyLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	a.list = container.NewVBox()
	a.listBG = canvas.NewRectangle(color.Transparent)
	a.listBG.StrokeWidth = 1

	a.unpinBtn = widget.NewButton(a.tr.T("unpin_all"), a.UnpinAll)

	top := container.NewVBox(a.titleLabel, a.hotkeyLabel)
	center := container.NewStack(a.listBG, container.NewVScroll(a.list))
	return container.NewBorder(top, a.unpinBtn, nil, nil, center)
}

// Refresh enumerates the windows again and rebuilds the checklist. Pinned
// entries of closed windows are forgotten.
func (a *App) Refresh() {
	entries, err := a.enum.Snapshot()
	if err != nil {
		debuglog.Printf("enumerate windows: %v", err)
		return
	}
	a.pins.Prune(a.desk.Alive)

	objs := make([]fyne.CanvasObject, 0, len(entries))
	checks := make(map[window.Handle]*widget.Check, len(entries))
	for _, e := range entries {
		c := widget.NewCheck(e.Title, nil)
		c.Checked = a.pins.Pinned(e.Handle)
		c.OnChanged = func(on bool) {
			a.TogglePin(e.Handle, on)
		}
		objs = append(objs, c)
		checks[e.Handle] = c
	}

	a.checks = checks
	a.list.Objects = objs
	a.list.Refresh()
}

// TogglePin pins or unpins h from the checklist. A failure is only logged;
// the next refresh shows the real state.
func (a *App) TogglePin(h window.Handle, on bool) {
	if err := a.pins.SetPinned(h, on); err != nil {
		logToggleError(h, on, err)
	}
}

// UnpinAll clears every pinned window and refreshes the list.
func (a *App) UnpinAll() {
	if err := a.pins.UnpinAll(); err != nil {
		debuglog.Printf("unpin all: %v", err)
	}
	a.Refresh()
}

func logToggleError(h window.Handle, on bool, err error) {
	kind := "failed"
	switch {
	case errors.Is(err, window.ErrStaleHandle):
		kind = "stale"
	case errors.Is(err, window.ErrAccessDenied):
		kind = "denied"
	}
	debuglog.Named("topmost $=hwnd $=on: $kind ($err)\n", nmfmt.M{
		"hwnd": h,
		"on":   on,
		"kind": kind,
		"err":  err,
	})
}
