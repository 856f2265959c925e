// Package theme maps a theme name to the colors each UI role is drawn with.
package theme

import "image/color"

type Name string

const (
	White Name = "white"
	Gray  Name = "gray"
	Black Name = "black"
)

// Names in menu order.
var Names = []Name{White, Gray, Black}

func (n Name) Valid() bool {
	_, ok := palettes[n]
	return ok
}

// Palette holds a color per role.
type Palette struct {
	Background  color.NRGBA
	Foreground  color.NRGBA
	List        color.NRGBA
	Button      color.NRGBA
	ButtonHover color.NRGBA
	Border      color.NRGBA
	MenuBar     color.NRGBA
	Menu        color.NRGBA

	Selection color.NRGBA
	Pressed   color.NRGBA
	Disabled  color.NRGBA

	// Dark tells widgets drawn by the toolkit itself to use their dark variant.
	Dark bool
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var palettes = map[Name]Palette{
	White: {
		Background:  rgb(0xFFFFFF),
		Foreground:  rgb(0x000000),
		List:        rgb(0xF5F5F5),
		Button:      rgb(0xE0E0E0),
		ButtonHover: rgb(0xD0D0D0),
		Border:      rgb(0xCCCCCC),
		MenuBar:     rgb(0xE8E8E8),
		Menu:        rgb(0xFFFFFF),
		Selection:   rgb(0x0078D4),
		Pressed:     rgb(0x005A9E),
		Disabled:    rgb(0x888888),
	},
	Gray: {
		Background:  rgb(0x808080),
		Foreground:  rgb(0xFFFFFF),
		List:        rgb(0x6B6B6B),
		Button:      rgb(0x6B6B6B),
		ButtonHover: rgb(0x757575),
		Border:      rgb(0x555555),
		MenuBar:     rgb(0x5A5A5A),
		Menu:        rgb(0x6B6B6B),
		Selection:   rgb(0x0078D4),
		Pressed:     rgb(0x005A9E),
		Disabled:    rgb(0x888888),
		Dark:        true,
	},
	Black: {
		Background:  rgb(0x1E1E1E),
		Foreground:  rgb(0xFFFFFF),
		List:        rgb(0x2D2D2D),
		Button:      rgb(0x2D2D2D),
		ButtonHover: rgb(0x3A3A3A),
		Border:      rgb(0x3E3E3E),
		MenuBar:     rgb(0x252525),
		Menu:        rgb(0x2D2D2D),
		Selection:   rgb(0x0078D4),
		Pressed:     rgb(0x005A9E),
		Disabled:    rgb(0x888888),
		Dark:        true,
	},
}

// Lookup returns the palette of n, or the white palette for an unknown name.
func Lookup(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[White]
}
