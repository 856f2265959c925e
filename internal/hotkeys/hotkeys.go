// Package hotkeys owns the two global shortcuts (pin / unpin foreground window).
package hotkeys

import (
	"errors"
	"fmt"

	"github.com/shu-go/aot/internal/debuglog"
)

// Backend registers a combination with the OS. The callback is invoked on a
// goroutine owned by the backend.
type Backend interface {
	Register(c Combo, fn func()) (Registration, error)
}

// Registration is one live OS binding.
type Registration interface {
	Unregister() error
}

type binding struct {
	spec  string
	combo Combo
	fn    func()
	reg   Registration
}

// Bindings is the set of currently registered shortcuts. Re-registering always
// removes the old set first and never leaves a partial set behind.
type Bindings struct {
	backend Backend
	active  []binding
}

func NewBindings(b Backend) *Bindings {
	return &Bindings{backend: b}
}

// Register replaces the active bindings with pin and unpin.
//
// Both combinations are parsed before anything is touched. If the OS refuses
// one of the new bindings, the ones already made are dropped, the previous
// bindings are registered again and the error is returned.
func (b *Bindings) Register(pin, unpin string, onPin, onUnpin func()) error {
	pc, err := ParseCombo(pin)
	if err != nil {
		return fmt.Errorf("pin hotkey: %w", err)
	}
	uc, err := ParseCombo(unpin)
	if err != nil {
		return fmt.Errorf("unpin hotkey: %w", err)
	}
	if pc == uc {
		return fmt.Errorf("pin and unpin hotkeys are both %s", pc)
	}

	prev := b.active
	if err := b.Unregister(); err != nil {
		debuglog.Printf("%v", err)
	}

	next, err := b.registerAll([]binding{
		{spec: pin, combo: pc, fn: onPin},
		{spec: unpin, combo: uc, fn: onUnpin},
	})
	if err != nil {
		if len(prev) > 0 {
			restored, rerr := b.registerAll(prev)
			if rerr != nil {
				debuglog.Printf("restore hotkeys: %v", rerr)
			} else {
				b.active = restored
			}
		}
		return err
	}

	b.active = next
	return nil
}

func (b *Bindings) registerAll(bs []binding) ([]binding, error) {
	done := make([]binding, 0, len(bs))

	for _, bd := range bs {
		reg, err := b.backend.Register(bd.combo, bd.fn)
		if err != nil {
			for _, d := range done {
				d.reg.Unregister()
			}
			return nil, fmt.Errorf("register %s: %w", bd.combo, err)
		}
		bd.reg = reg
		done = append(done, bd)
		debuglog.Printf("hotkey registered: %s", bd.combo)
	}

	return done, nil
}

// Unregister removes every active binding.
func (b *Bindings) Unregister() error {
	var errs []error
	for _, bd := range b.active {
		if err := bd.reg.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", bd.combo, err))
		}
	}
	b.active = nil
	return errors.Join(errs...)
}

// Active returns the pin and unpin combinations as given to Register,
// or empty strings when nothing is registered.
func (b *Bindings) Active() (pin, unpin string) {
	if len(b.active) != 2 {
		return "", ""
	}
	return b.active[0].spec, b.active[1].spec
}
