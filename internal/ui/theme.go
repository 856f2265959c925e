package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"github.com/shu-go/aot/internal/theme"
)

// paletteTheme draws fyne widgets with a theme.Palette. Anything the palette
// has no role for comes from the default theme.
type paletteTheme struct {
	p theme.Palette
}

var _ fyne.Theme = paletteTheme{}

func (t paletteTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case fynetheme.ColorNameBackground:
		return t.p.Background
	case fynetheme.ColorNameForeground:
		return t.p.Foreground
	case fynetheme.ColorNameButton:
		return t.p.Button
	case fynetheme.ColorNameHover:
		return t.p.ButtonHover
	case fynetheme.ColorNameInputBackground:
		return t.p.List
	case fynetheme.ColorNameInputBorder, fynetheme.ColorNameSeparator:
		return t.p.Border
	case fynetheme.ColorNameHeaderBackground:
		return t.p.MenuBar
	case fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return t.p.Menu
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameSelection:
		return t.p.Selection
	case fynetheme.ColorNamePressed:
		return t.p.Pressed
	case fynetheme.ColorNameDisabled:
		return t.p.Disabled
	case fynetheme.ColorNameDisabledButton:
		return t.p.Border
	}
	return fynetheme.DefaultTheme().Color(n, t.variant())
}

func (t paletteTheme) variant() fyne.ThemeVariant {
	if t.p.Dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

func (t paletteTheme) Font(s fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(s)
}

func (t paletteTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(n)
}

func (t paletteTheme) Size(n fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(n)
}

func (a *App) applyTheme(n theme.Name) {
	p := theme.Lookup(n)
	a.fa.Settings().SetTheme(paletteTheme{p: p})

	a.listBG.FillColor = p.List
	a.listBG.StrokeColor = p.Border
	a.listBG.Refresh()
}
