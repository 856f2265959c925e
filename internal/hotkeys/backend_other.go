//go:build !windows

package hotkeys

import "errors"

type osBackend struct{}

func OS() Backend {
	return osBackend{}
}

func (osBackend) Register(Combo, func()) (Registration, error) {
	return nil, errors.New("global hotkeys are only supported on Windows")
}
