package hotkeys

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ctrl+shift+p", "ctrl+shift+p"},
		{"Ctrl+Shift+U", "ctrl+shift+u"},
		{" shift + ctrl + p ", "ctrl+shift+p"},
		{"alt+p", "alt+p"},
		{"control+f12", "ctrl+f12"},
		{"win+esc", "win+escape"},
		{"super+pgdn", "win+pagedown"},
		{"ctrl+alt+9", "ctrl+alt+9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseCombo(tt.in)
			if err != nil {
				t.Fatalf("ParseCombo(%q): %v", tt.in, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("ParseCombo(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCombo_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"p",
		"ctrl+",
		"ctrl++p",
		"ctrl+shift",
		"ctrl+banana",
		"ctrl+p+q",
		"ctrl+ctrl+p",
		"ctrl+f21",
	} {
		if _, err := ParseCombo(in); err == nil {
			t.Errorf("ParseCombo(%q): expected error", in)
		}
	}
}

type fakeBackend struct {
	live    map[string]func()
	refuse  map[string]bool
	history []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{live: map[string]func(){}, refuse: map[string]bool{}}
}

type fakeRegistration struct {
	b   *fakeBackend
	key string
}

func (r fakeRegistration) Unregister() error {
	if _, ok := r.b.live[r.key]; !ok {
		return errors.New("not registered")
	}
	delete(r.b.live, r.key)
	r.b.history = append(r.b.history, "-"+r.key)
	return nil
}

func (b *fakeBackend) Register(c Combo, fn func()) (Registration, error) {
	key := c.String()
	if b.refuse[key] {
		return nil, errors.New("hotkey already in use")
	}
	if _, dup := b.live[key]; dup {
		return nil, errors.New("duplicate registration")
	}
	b.live[key] = fn
	b.history = append(b.history, "+"+key)
	return fakeRegistration{b: b, key: key}, nil
}

func (b *fakeBackend) press(key string) bool {
	fn, ok := b.live[key]
	if ok {
		fn()
	}
	return ok
}

func TestBindings_RegisterAndFire(t *testing.T) {
	be := newFakeBackend()
	b := NewBindings(be)

	var pins, unpins int
	if err := b.Register("ctrl+shift+p", "ctrl+shift+u", func() { pins++ }, func() { unpins++ }); err != nil {
		t.Fatalf("register: %v", err)
	}

	be.press("ctrl+shift+p")
	be.press("ctrl+shift+u")
	be.press("ctrl+shift+u")
	if pins != 1 || unpins != 2 {
		t.Fatalf("pins=%d unpins=%d, want 1 and 2", pins, unpins)
	}

	pin, unpin := b.Active()
	if pin != "ctrl+shift+p" || unpin != "ctrl+shift+u" {
		t.Fatalf("Active() = %q, %q", pin, unpin)
	}
}

func TestBindings_ReRegisterRemovesOld(t *testing.T) {
	be := newFakeBackend()
	b := NewBindings(be)
	noop := func() {}

	if err := b.Register("ctrl+shift+p", "ctrl+shift+u", noop, noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := b.Register("alt+p", "alt+u", noop, noop); err != nil {
		t.Fatalf("re-register: %v", err)
	}

	if len(be.live) != 2 {
		t.Fatalf("expected exactly 2 live bindings, got %v", be.live)
	}
	if be.press("ctrl+shift+p") {
		t.Fatalf("old pin binding still live")
	}
	want := "+ctrl+shift+p,+ctrl+shift+u,-ctrl+shift+p,-ctrl+shift+u,+alt+p,+alt+u"
	if got := strings.Join(be.history, ","); got != want {
		t.Fatalf("history = %s, want %s", got, want)
	}
}

func TestBindings_InvalidComboKeepsPrevious(t *testing.T) {
	be := newFakeBackend()
	b := NewBindings(be)
	noop := func() {}

	if err := b.Register("ctrl+shift+p", "ctrl+shift+u", noop, noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	before := len(be.history)

	if err := b.Register("ctrl+shift+", "ctrl+shift+u", noop, noop); err == nil {
		t.Fatalf("expected parse error")
	}
	if len(be.history) != before {
		t.Fatalf("parse error must not touch the OS bindings: %v", be.history[before:])
	}
	if pin, _ := b.Active(); pin != "ctrl+shift+p" {
		t.Fatalf("previous pin binding lost, Active() pin = %q", pin)
	}
	if !be.press("ctrl+shift+p") {
		t.Fatalf("previous pin binding not live")
	}
}

func TestBindings_OSRefusalRestoresPrevious(t *testing.T) {
	be := newFakeBackend()
	b := NewBindings(be)

	var pins int
	if err := b.Register("ctrl+shift+p", "ctrl+shift+u", func() { pins++ }, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}

	be.refuse["alt+u"] = true
	err := b.Register("alt+p", "alt+u", func() {}, func() {})
	if err == nil {
		t.Fatalf("expected registration error")
	}

	if _, ok := be.live["alt+p"]; ok {
		t.Fatalf("partial new binding alt+p left registered")
	}
	if len(be.live) != 2 {
		t.Fatalf("expected previous 2 bindings live, got %v", be.live)
	}
	be.press("ctrl+shift+p")
	if pins != 1 {
		t.Fatalf("restored pin binding does not call the original callback")
	}
	if pin, unpin := b.Active(); pin != "ctrl+shift+p" || unpin != "ctrl+shift+u" {
		t.Fatalf("Active() = %q, %q", pin, unpin)
	}
}

func TestBindings_SameComboRejected(t *testing.T) {
	b := NewBindings(newFakeBackend())
	if err := b.Register("ctrl+p", "Ctrl+P", func() {}, func() {}); err == nil {
		t.Fatalf("expected error for identical pin and unpin")
	}
}

func TestBindings_Unregister(t *testing.T) {
	be := newFakeBackend()
	b := NewBindings(be)
	if err := b.Register("ctrl+shift+p", "ctrl+shift+u", func() {}, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := b.Unregister(); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if len(be.live) != 0 {
		t.Fatalf("bindings still live: %v", be.live)
	}
	if pin, unpin := b.Active(); pin != "" || unpin != "" {
		t.Fatalf("Active() after Unregister = %q, %q", pin, unpin)
	}
	if err := b.Unregister(); err != nil {
		t.Fatalf("second unregister: %v", err)
	}
}
