//go:build windows

package winapi

import (
	"os/exec"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/shu-go/aot/internal/window"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	enumWindows              = user32.NewProc("EnumWindows")
	getWindowText            = user32.NewProc("GetWindowTextW")
	getWindowTextLength      = user32.NewProc("GetWindowTextLengthW")
	getWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	isWindow                 = user32.NewProc("IsWindow")
	isWindowVisible          = user32.NewProc("IsWindowVisible")
	getParent                = user32.NewProc("GetParent")
	getWindow                = user32.NewProc("GetWindow")
	getWindowLong            = user32.NewProc("GetWindowLongW")
	setWindowPos             = user32.NewProc("SetWindowPos")
	getForegroundWindow      = user32.NewProc("GetForegroundWindow")
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	gwOwner = 4

	gwlEXStyle     = 0xFFFFFFEC
	wsEXTopmost    = 0x00000008
	wsEXToolWindow = 0x00000080

	hwndTopmost   = ^uintptr(0)
	hwndNoTopmost = ^uintptr(1)
)

// Windows hands out a limited number of callbacks per process, so the
// EnumWindows callback is created once and shared under enumMu.
var (
	enumMu       sync.Mutex
	enumFound    []window.Handle
	enumCallback = windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		enumFound = append(enumFound, window.Handle(hwnd))
		return 1
	})
)

func (Desktop) Handles() ([]window.Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFound = nil
	r, _, err := enumWindows.Call(enumCallback, 0)
	found := enumFound
	enumFound = nil

	if r == 0 {
		return nil, errors.Wrap(err, "USER32.EnumWindows returned FALSE")
	}
	return found, nil
}

func (d Desktop) Describe(h window.Handle) (window.Info, bool) {
	if !d.Alive(h) {
		return window.Info{}, false
	}

	vis, _, _ := isWindowVisible.Call(uintptr(h))
	parent, _, _ := getParent.Call(uintptr(h))
	owner, _, _ := getWindow.Call(uintptr(h), gwOwner)
	style, _, _ := getWindowLong.Call(uintptr(h), gwlEXStyle)

	return window.Info{
		Title:      title(h),
		PID:        processID(h),
		Visible:    vis != 0,
		HasParent:  parent != 0,
		HasOwner:   owner != 0,
		ToolWindow: style&wsEXToolWindow != 0,
	}, true
}

// Alive reports whether h still refers to a window.
func (Desktop) Alive(h window.Handle) bool {
	if h == 0 {
		return false
	}
	b, _, _ := isWindow.Call(uintptr(h))
	return b != 0
}

// Topmost reports whether h currently has the always-on-top flag.
func (Desktop) Topmost(h window.Handle) bool {
	style, _, _ := getWindowLong.Call(uintptr(h), gwlEXStyle)
	return style&wsEXTopmost != 0
}

// SetTopmost toggles HWND_TOPMOST without moving, resizing or activating h.
func (d Desktop) SetTopmost(h window.Handle, on bool) error {
	if !d.Alive(h) {
		return errors.Wrapf(window.ErrStaleHandle, "hwnd %#x", uintptr(h))
	}

	hwndInsertAfter := hwndNoTopmost
	if on {
		hwndInsertAfter = hwndTopmost
	}

	r, _, err := setWindowPos.Call(
		uintptr(h),
		hwndInsertAfter,
		0,
		0,
		0,
		0,
		swpNoSize|swpNoMove|swpNoActivate)
	if r != 0 {
		return nil
	}
	return classify(h, err)
}

func classify(h window.Handle, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case windows.ERROR_INVALID_WINDOW_HANDLE:
			return errors.Wrapf(window.ErrStaleHandle, "hwnd %#x", uintptr(h))
		case windows.ERROR_ACCESS_DENIED:
			return errors.Wrapf(window.ErrAccessDenied, "hwnd %#x", uintptr(h))
		}
	}
	return errors.Wrapf(err, "USER32.SetWindowPos(hwnd %#x)", uintptr(h))
}

// Foreground returns the window receiving keyboard input and its title.
// The handle is 0 when no window has focus.
func (Desktop) Foreground() (window.Handle, string) {
	hwnd, _, _ := getForegroundWindow.Call()
	if hwnd == 0 {
		return 0, ""
	}
	return window.Handle(hwnd), title(window.Handle(hwnd))
}

// RevealInFolder opens Explorer with path selected.
func RevealInFolder(path string) error {
	cmd := exec.Command("explorer")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: `explorer /select,"` + path + `"`,
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "explorer")
	}
	// explorer exits non-zero even on success
	go cmd.Wait()
	return nil
}

func title(h window.Handle) string {
	tlen, _, _ := getWindowTextLength.Call(uintptr(h))
	if tlen == 0 {
		return ""
	}

	tlen++
	buff := make([]uint16, tlen)
	getWindowText.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buff[0])),
		tlen,
	)
	return windows.UTF16ToString(buff)
}

func processID(h window.Handle) int {
	var pid uint32
	getWindowThreadProcessId.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&pid)),
	)
	return int(pid)
}
