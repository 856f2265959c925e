package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shu-go/aot/internal/window"
)

// appearingSource shows its window after a number of Handles calls.
type appearingSource struct {
	after int
	calls int
}

func (s *appearingSource) Handles() ([]window.Handle, error) {
	s.calls++
	if s.calls <= s.after {
		return nil, nil
	}
	return []window.Handle{42}, nil
}

func (s *appearingSource) Describe(h window.Handle) (window.Info, bool) {
	return window.Info{Title: "Untitled - Notepad", PID: -1, Visible: true}, true
}

func TestPollTarget_WaitsForWindow(t *testing.T) {
	src := &appearingSource{after: 2}

	w, err := pollTarget(context.Background(), src, "notepad", time.Millisecond)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if w.Handle != 42 || src.calls != 3 {
		t.Fatalf("got %+v after %d calls", w, src.calls)
	}
}

func TestPollTarget_Cancelled(t *testing.T) {
	src := &appearingSource{after: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := pollTarget(ctx, src, "notepad", time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestFindTarget_NoMatch(t *testing.T) {
	src := &appearingSource{}

	if _, err := findTarget(src, "excel"); !errors.Is(err, errNoTarget) {
		t.Fatalf("expected errNoTarget, got %v", err)
	}
}
