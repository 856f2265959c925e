// Package window discovers the top-level windows a user would pin.
package window

import (
	"iter"
	"slices"
	"strings"

	"github.com/mitchellh/go-ps"
	"github.com/pkg/errors"
)

// Handle is an opaque OS window identifier (HWND on Windows).
type Handle uintptr

// Entry is one listable window. Entries are rebuilt on every enumeration.
type Entry struct {
	Handle     Handle `json:"handle" yaml:"handle"`
	Title      string `json:"title" yaml:"title"`
	PID        int    `json:"pid" yaml:"pid"`
	Executable string `json:"executable,omitempty" yaml:"executable,omitempty"`
}

// Info is what a Source knows about a single top-level window.
type Info struct {
	Title      string
	PID        int
	Visible    bool
	HasParent  bool
	HasOwner   bool
	ToolWindow bool
}

// Source is the OS side of enumeration.
type Source interface {
	// Handles returns every top-level window in z-order.
	Handles() ([]Handle, error)
	// Describe reports false when h no longer refers to a window.
	Describe(h Handle) (Info, bool)
}

var (
	ErrStaleHandle  = errors.New("window no longer exists")
	ErrAccessDenied = errors.New("access denied")
	ErrUnsupported  = errors.New("not supported on this platform")
)

// Enumerator lists taskbar-like windows, one per process.
type Enumerator struct {
	Source Source

	// Exclude holds titles that are never listed (exact match).
	Exclude []string

	// ProcessName resolves Entry.Executable. nil leaves it empty.
	ProcessName func(pid int) string
}

// Windows takes a fresh handle snapshot and returns a sequence over the listable
// windows. Window attributes are queried while the sequence is ranged, so the
// sequence may be ranged again to re-evaluate the same handles.
func (e *Enumerator) Windows() (iter.Seq[Entry], error) {
	handles, err := e.Source.Handles()
	if err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		seen := make(map[int]struct{})

		for _, h := range handles {
			info, ok := e.Source.Describe(h)
			if !ok || !Listable(info) {
				continue
			}

			if _, dup := seen[info.PID]; dup {
				continue
			}
			seen[info.PID] = struct{}{}

			if slices.Contains(e.Exclude, info.Title) {
				continue
			}

			entry := Entry{
				Handle: h,
				Title:  info.Title,
				PID:    info.PID,
			}
			if e.ProcessName != nil {
				entry.Executable = e.ProcessName(info.PID)
			}

			if !yield(entry) {
				return
			}
		}
	}, nil
}

// Snapshot collects Windows into a slice.
func (e *Enumerator) Snapshot() ([]Entry, error) {
	seq, err := e.Windows()
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Listable reports whether a window would appear on the taskbar.
func Listable(info Info) bool {
	if !info.Visible || info.HasParent || info.HasOwner || info.ToolWindow {
		return false
	}
	return strings.TrimSpace(info.Title) != ""
}

// ProcessName returns the executable name of pid, or "" if the process is gone.
func ProcessName(pid int) string {
	p, err := ps.FindProcess(pid)
	if p == nil || err != nil {
		return ""
	}
	return p.Executable()
}

// Ancestors returns pid followed by its parent, grandparent and so on.
func Ancestors(pid int) []int {
	an := []int{pid}

	curr := pid
	for {
		p, err := ps.FindProcess(curr)
		if p == nil || err != nil {
			break
		}

		ppid := p.PPid()
		if ppid == curr || slices.Contains(an, ppid) {
			break
		}
		curr = ppid
		an = append(an, curr)
	}

	return an
}
