package pin

import (
	"errors"
	"testing"

	"github.com/shu-go/aot/internal/window"
)

// fakeToggler mimics the OS topmost flag.
type fakeToggler struct {
	topmost map[window.Handle]bool
	fail    map[window.Handle]error
	calls   []window.Handle
}

func newFakeToggler() *fakeToggler {
	return &fakeToggler{
		topmost: map[window.Handle]bool{},
		fail:    map[window.Handle]error{},
	}
}

func (f *fakeToggler) SetTopmost(h window.Handle, on bool) error {
	f.calls = append(f.calls, h)
	if err := f.fail[h]; err != nil {
		return err
	}
	f.topmost[h] = on
	return nil
}

func TestSetPinned_RoundTripRestoresFlag(t *testing.T) {
	tg := newFakeToggler()
	s := NewStore(tg)

	before := tg.topmost[1]
	if err := s.SetPinned(1, true); err != nil {
		t.Fatalf("pin: %v", err)
	}
	if !tg.topmost[1] || !s.Pinned(1) {
		t.Fatalf("expected window 1 pinned")
	}
	if err := s.SetPinned(1, false); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	if tg.topmost[1] != before {
		t.Fatalf("topmost flag = %v, want %v", tg.topmost[1], before)
	}
	if s.Pinned(1) {
		t.Fatalf("expected window 1 unpinned in store")
	}
}

func TestSetPinned_FailureLeavesMap(t *testing.T) {
	tg := newFakeToggler()
	tg.fail[7] = window.ErrStaleHandle
	s := NewStore(tg)

	err := s.SetPinned(7, true)
	if !errors.Is(err, window.ErrStaleHandle) {
		t.Fatalf("expected stale handle error, got %v", err)
	}
	if s.Pinned(7) || s.Len() != 0 {
		t.Fatalf("failed pin must not be recorded")
	}
}

func TestUnpinAll_ToleratesIndividualFailures(t *testing.T) {
	tg := newFakeToggler()
	s := NewStore(tg)
	for _, h := range []window.Handle{1, 2, 3, 4} {
		if err := s.SetPinned(h, true); err != nil {
			t.Fatalf("pin %d: %v", h, err)
		}
	}
	denied := errors.New("denied")
	tg.fail[1] = window.ErrStaleHandle
	tg.fail[2] = denied

	err := s.UnpinAll()
	if !errors.Is(err, denied) {
		t.Fatalf("expected joined error to contain denied, got %v", err)
	}
	if tg.topmost[3] || tg.topmost[4] {
		t.Fatalf("expected windows 3 and 4 unpinned despite earlier failures")
	}
	if s.Len() != 3 {
		t.Fatalf("expected stale handle 1 dropped, len = %d", s.Len())
	}
	if !s.Pinned(2) {
		t.Fatalf("expected window 2 to stay pinned after a failed unpin")
	}
}

func TestUnpinAll_ThenPruneLeavesNothingPinned(t *testing.T) {
	tg := newFakeToggler()
	s := NewStore(tg)
	for _, h := range []window.Handle{1, 2, 3} {
		if err := s.SetPinned(h, true); err != nil {
			t.Fatalf("pin %d: %v", h, err)
		}
	}
	// Window 2 closed meanwhile.
	tg.fail[2] = window.ErrStaleHandle

	if err := s.UnpinAll(); err != nil {
		t.Fatalf("unpin all: %v", err)
	}
	s.Prune(func(h window.Handle) bool { return h != 2 })

	if got := s.PinnedHandles(); len(got) != 0 {
		t.Fatalf("expected no pinned handles, got %v", got)
	}
}

func TestPrune(t *testing.T) {
	tg := newFakeToggler()
	s := NewStore(tg)
	_ = s.SetPinned(1, true)
	_ = s.SetPinned(2, true)
	_ = s.SetPinned(3, false)

	s.Prune(func(h window.Handle) bool { return h == 1 })

	if s.Len() != 1 || !s.Pinned(1) {
		t.Fatalf("expected only handle 1 to remain, len=%d", s.Len())
	}
}

func TestPinnedHandles_Sorted(t *testing.T) {
	s := NewStore(newFakeToggler())
	for _, h := range []window.Handle{30, 10, 20} {
		_ = s.SetPinned(h, true)
	}
	_ = s.SetPinned(20, false)

	got := s.PinnedHandles()
	if len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Fatalf("PinnedHandles() = %v, want [10 30]", got)
	}
}
