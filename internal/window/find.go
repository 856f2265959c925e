package window

import (
	"iter"
	"slices"
	"strings"
)

// All is like Windows but keeps every listable window: no per-process
// deduplication and no title exclusion.
func (e *Enumerator) All() (iter.Seq[Entry], error) {
	handles, err := e.Source.Handles()
	if err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		for _, h := range handles {
			info, ok := e.Source.Describe(h)
			if !ok || !Listable(info) {
				continue
			}

			entry := Entry{Handle: h, Title: info.Title, PID: info.PID}
			if e.ProcessName != nil {
				entry.Executable = e.ProcessName(info.PID)
			}
			if !yield(entry) {
				return
			}
		}
	}, nil
}

// Find returns the first visible window matching query.
//
// A non-empty query matches titles containing it, case-insensitively, and
// skips windows owned by the ancestor processes. An empty query matches the
// first window owned by one of ancestors instead, which is the console
// hosting the calling command.
func Find(src Source, query string, ancestors []int) (Entry, bool, error) {
	handles, err := src.Handles()
	if err != nil {
		return Entry{}, false, err
	}

	q := strings.ToLower(query)
	for _, h := range handles {
		info, ok := src.Describe(h)
		if !ok || !info.Visible {
			continue
		}

		ancestor := slices.Contains(ancestors, info.PID)
		if q != "" {
			if ancestor || !strings.Contains(strings.ToLower(info.Title), q) {
				continue
			}
		} else if !ancestor {
			continue
		}

		return Entry{Handle: h, Title: info.Title, PID: info.PID}, true, nil
	}
	return Entry{}, false, nil
}
