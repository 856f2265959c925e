//go:build !windows

package winapi

import "github.com/shu-go/aot/internal/window"

func (Desktop) Handles() ([]window.Handle, error) {
	return nil, window.ErrUnsupported
}

func (Desktop) Describe(window.Handle) (window.Info, bool) {
	return window.Info{}, false
}

func (Desktop) Alive(window.Handle) bool {
	return false
}

func (Desktop) Topmost(window.Handle) bool {
	return false
}

func (Desktop) SetTopmost(window.Handle, bool) error {
	return window.ErrUnsupported
}

func (Desktop) Foreground() (window.Handle, string) {
	return 0, ""
}

func RevealInFolder(string) error {
	return window.ErrUnsupported
}
