package hotkeys

import (
	"testing"
	"time"
)

func runListener(keydown <-chan struct{}, done <-chan struct{}, fn func()) <-chan struct{} {
	exited := make(chan struct{})
	go func() {
		listenKeydown(keydown, done, fn)
		close(exited)
	}()
	return exited
}

func waitExit(t *testing.T, exited <-chan struct{}) {
	t.Helper()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatalf("listener did not return")
	}
}

func TestListenKeydown_FiresPerEvent(t *testing.T) {
	keydown := make(chan struct{})
	done := make(chan struct{})
	fired := make(chan struct{}, 2)

	exited := runListener(keydown, done, func() { fired <- struct{}{} })
	keydown <- struct{}{}
	keydown <- struct{}{}
	close(done)
	waitExit(t, exited)

	if len(fired) != 2 {
		t.Fatalf("fired %d times, want 2", len(fired))
	}
}

func TestListenKeydown_ClosedChannelDoesNotFire(t *testing.T) {
	keydown := make(chan struct{})
	done := make(chan struct{})
	calls := 0

	exited := runListener(keydown, done, func() { calls++ })
	close(keydown)
	waitExit(t, exited)

	if calls != 0 {
		t.Fatalf("closed keydown fired the callback %d times", calls)
	}
}

func TestListenKeydown_DoneWinsOverPendingEvent(t *testing.T) {
	keydown := make(chan struct{}, 1)
	done := make(chan struct{})
	keydown <- struct{}{}
	close(done)

	for range 50 {
		calls := 0
		listenKeydown[struct{}](keydown, done, func() { calls++ })
		if calls != 0 {
			t.Fatalf("callback fired after done was closed")
		}
	}
}
