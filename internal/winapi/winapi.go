// Package winapi talks to USER32 for window enumeration, the topmost flag and
// the foreground window. On other platforms every call reports
// window.ErrUnsupported.
package winapi

import (
	"github.com/shu-go/aot/internal/pin"
	"github.com/shu-go/aot/internal/window"
)

// Desktop is the live window system of the current session.
type Desktop struct{}

var (
	_ window.Source = Desktop{}
	_ pin.Toggler   = Desktop{}
)
