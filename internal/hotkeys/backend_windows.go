//go:build windows

package hotkeys

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

var modifierMap = []struct {
	mod Modifier
	hk  hotkey.Modifier
}{
	{ModCtrl, hotkey.ModCtrl},
	{ModShift, hotkey.ModShift},
	{ModAlt, hotkey.ModAlt},
	{ModWin, hotkey.ModWin},
}

// virtual-key codes missing from golang.design/x/hotkey
const (
	vkPrior  hotkey.Key = 0x21
	vkNext   hotkey.Key = 0x22
	vkEnd    hotkey.Key = 0x23
	vkHome   hotkey.Key = 0x24
	vkInsert hotkey.Key = 0x2D
	vkF1     hotkey.Key = 0x70
)

var namedKeys = map[string]hotkey.Key{
	"space":    hotkey.KeySpace,
	"enter":    hotkey.KeyReturn,
	"tab":      hotkey.KeyTab,
	"escape":   hotkey.KeyEscape,
	"delete":   hotkey.KeyDelete,
	"insert":   vkInsert,
	"home":     vkHome,
	"end":      vkEnd,
	"pageup":   vkPrior,
	"pagedown": vkNext,
	"up":       hotkey.KeyUp,
	"down":     hotkey.KeyDown,
	"left":     hotkey.KeyLeft,
	"right":    hotkey.KeyRight,
}

func virtualKey(name string) (hotkey.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case 'a' <= c && c <= 'z':
			return hotkey.Key(c - 'a' + 'A'), true
		case '0' <= c && c <= '9':
			return hotkey.Key(c), true
		}
	}
	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && 1 <= n && n <= 20 {
		return vkF1 + hotkey.Key(n-1), true
	}
	return 0, false
}

type osBackend struct{}

// OS returns the RegisterHotKey based backend.
func OS() Backend {
	return osBackend{}
}

func (osBackend) Register(c Combo, fn func()) (Registration, error) {
	key, ok := virtualKey(c.Key)
	if !ok {
		return nil, fmt.Errorf("no virtual key for %q", c.Key)
	}

	var mods []hotkey.Modifier
	for _, m := range modifierMap {
		if c.Mods&m.mod != 0 {
			mods = append(mods, m.hk)
		}
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	r := &osRegistration{hk: hk, done: make(chan struct{})}
	go listenKeydown(hk.Keydown(), r.done, fn)
	return r, nil
}

type osRegistration struct {
	hk   *hotkey.Hotkey
	done chan struct{}
	once sync.Once
}

func (r *osRegistration) Unregister() error {
	r.once.Do(func() { close(r.done) })
	return r.hk.Unregister()
}
