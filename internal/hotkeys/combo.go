package hotkeys

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModWin
)

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"win":     ModWin,
	"super":   ModWin,
}

var keyAliases = map[string]string{
	"esc":    "escape",
	"return": "enter",
	"del":    "delete",
	"ins":    "insert",
	"pgup":   "pageup",
	"pgdn":   "pagedown",
}

// keyNames lists every key a combination may end with.
var keyNames = func() map[string]struct{} {
	names := map[string]struct{}{}
	for c := 'a'; c <= 'z'; c++ {
		names[string(c)] = struct{}{}
	}
	for c := '0'; c <= '9'; c++ {
		names[string(c)] = struct{}{}
	}
	for i := 1; i <= 20; i++ {
		names[fmt.Sprintf("f%d", i)] = struct{}{}
	}
	for _, n := range []string{
		"space", "enter", "tab", "escape", "delete", "insert",
		"home", "end", "pageup", "pagedown",
		"up", "down", "left", "right",
	} {
		names[n] = struct{}{}
	}
	return names
}()

// Combo is a parsed key combination such as ctrl+shift+p.
type Combo struct {
	Mods Modifier
	Key  string
}

// String returns the canonical form: modifiers in ctrl, shift, alt, win order.
func (c Combo) String() string {
	var parts []string
	for _, m := range []struct {
		mod  Modifier
		name string
	}{
		{ModCtrl, "ctrl"},
		{ModShift, "shift"},
		{ModAlt, "alt"},
		{ModWin, "win"},
	} {
		if c.Mods&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(append(parts, c.Key), "+")
}

// ParseCombo parses "mod+...+key". Case and surrounding spaces are ignored.
// A global combination needs at least one modifier and exactly one key.
func ParseCombo(s string) (Combo, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Combo{}, fmt.Errorf("empty hotkey")
	}

	var c Combo
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combo{}, fmt.Errorf("malformed hotkey %q", s)
		}

		if m, ok := modifierNames[part]; ok {
			if c.Mods&m != 0 {
				return Combo{}, fmt.Errorf("modifier %q repeated in %q", part, s)
			}
			c.Mods |= m
			continue
		}

		if alias, ok := keyAliases[part]; ok {
			part = alias
		}
		if _, ok := keyNames[part]; !ok {
			return Combo{}, fmt.Errorf("unknown key %q in %q", part, s)
		}
		if c.Key != "" {
			return Combo{}, fmt.Errorf("more than one key in %q", s)
		}
		c.Key = part
	}

	if c.Key == "" {
		return Combo{}, fmt.Errorf("no key in %q", s)
	}
	if c.Mods == 0 {
		return Combo{}, fmt.Errorf("hotkey %q needs at least one of ctrl, shift, alt, win", s)
	}

	return c, nil
}
