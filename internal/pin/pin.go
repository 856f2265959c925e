// Package pin tracks which windows this program has made topmost.
//
// A Store is not safe for concurrent use; the GUI only touches it from the UI
// goroutine.
package pin

import (
	"errors"
	"sort"

	"github.com/shu-go/aot/internal/window"
)

// Toggler sets or clears the always-on-top flag of a window without moving
// or resizing it.
type Toggler interface {
	SetTopmost(h window.Handle, on bool) error
}

// Store is the handle -> pinned map.
type Store struct {
	toggler Toggler
	pinned  map[window.Handle]bool
}

func NewStore(t Toggler) *Store {
	return &Store{
		toggler: t,
		pinned:  make(map[window.Handle]bool),
	}
}

// SetPinned asks the OS to (un)pin h. The map changes only when the OS call
// succeeds.
func (s *Store) SetPinned(h window.Handle, on bool) error {
	if err := s.toggler.SetTopmost(h, on); err != nil {
		return err
	}
	s.pinned[h] = on
	return nil
}

// Pinned reports whether h was pinned by this store.
func (s *Store) Pinned(h window.Handle) bool {
	return s.pinned[h]
}

// PinnedHandles returns the pinned handles in ascending order.
func (s *Store) PinnedHandles() []window.Handle {
	var hs []window.Handle
	for h, on := range s.pinned {
		if on {
			hs = append(hs, h)
		}
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// UnpinAll clears every pinned window. A failure on one window does not stop
// the others; all failures are joined into the returned error.
func (s *Store) UnpinAll() error {
	var errs []error

	for _, h := range s.PinnedHandles() {
		err := s.toggler.SetTopmost(h, false)
		switch {
		case err == nil:
			s.pinned[h] = false
		case errors.Is(err, window.ErrStaleHandle):
			delete(s.pinned, h)
		default:
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Prune forgets handles for which alive reports false.
func (s *Store) Prune(alive func(window.Handle) bool) {
	for h := range s.pinned {
		if !alive(h) {
			delete(s.pinned, h)
		}
	}
}

// Len is the number of tracked handles, pinned or not.
func (s *Store) Len() int {
	return len(s.pinned)
}
