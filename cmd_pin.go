package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/pin"
	"github.com/shu-go/aot/internal/window"
	"github.com/shu-go/aot/internal/winapi"
)

type pinCmd struct {
	Target string `cli:"target,t=WINDOW_TITLE" help:"default to current window"`

	Wait     bool          `help:"wait until the window appears"`
	Interval time.Duration `cli:"interval,i=DURATION" default:"1s"`
	Timeout  time.Duration `cli:"timeout=DURATION" default:"0s" help:"zero value means infinite"`
}

func (c pinCmd) Run(g globalCmd) error {
	desk := winapi.Desktop{}

	var w window.Entry
	var err error
	if c.Wait {
		w, err = waitTarget(desk, c.Target, c.Interval, c.Timeout)
	} else {
		w, err = findTarget(desk, c.Target)
	}
	if err != nil {
		return err
	}

	return setTopmost(desk, w, true)
}

type unpinCmd struct {
	Target string `cli:"target,t=WINDOW_TITLE" help:"default to current window"`
}

func (c unpinCmd) Run(g globalCmd) error {
	desk := winapi.Desktop{}

	w, err := findTarget(desk, c.Target)
	if err != nil {
		return err
	}

	return setTopmost(desk, w, false)
}

func setTopmost(t pin.Toggler, w window.Entry, on bool) error {
	debuglog.Printf("target: %#v (on=%v)", w, on)

	if err := t.SetTopmost(w.Handle, on); err != nil {
		return errors.Wrapf(err, "%q", w.Title)
	}
	return nil
}

var errNoTarget = errors.New("no target")

func findTarget(src window.Source, title string) (window.Entry, error) {
	w, ok, err := window.Find(src, title, window.Ancestors(os.Getpid()))
	if err != nil {
		return window.Entry{}, err
	}
	if !ok {
		return window.Entry{}, errNoTarget
	}
	return w, nil
}

// waitTarget polls findTarget every interval until a window matches, the
// timeout (zero means none) passes or the user interrupts.
func waitTarget(src window.Source, title string, interval, timeout time.Duration) (window.Entry, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Fprintln(os.Stderr, "Press Ctrl+C to cancel.")
	return pollTarget(ctx, src, title, interval)
}

func pollTarget(ctx context.Context, src window.Source, title string, interval time.Duration) (window.Entry, error) {
	if interval <= 0 {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		w, err := findTarget(src, title)
		if !errors.Is(err, errNoTarget) {
			return w, err
		}

		select {
		case <-ctx.Done():
			return window.Entry{}, errors.Wrap(ctx.Err(), "cancelled")
		case <-t.C:
		}
	}
}
