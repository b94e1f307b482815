// Package history records the outcome of hook runs in the git directory.
// "hooked history" reads it back.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/raphi011/hooked/internal/storage"
)

// DefaultLimit is the number of runs kept by default.
const DefaultLimit = 50

// Entry is one recorded hook run.
type Entry struct {
	Hook     string        `json:"hook"`
	Branch   string        `json:"branch,omitempty"`
	Time     time.Time     `json:"time"`
	Duration time.Duration `json:"duration"`
	Passed   int           `json:"passed"`
	Skipped  int           `json:"skipped"`
	Failed   []string      `json:"failed,omitempty"`
}

// OK reports whether no action failed.
func (e Entry) OK() bool {
	return len(e.Failed) == 0
}

// History is the list of recorded runs, oldest first.
type History struct {
	Entries []Entry `json:"entries"`
}

// Path returns the history file of a git directory.
func Path(gitDir string) string {
	return filepath.Join(gitDir, storage.DirName, "history.json")
}

func lockPath(path string) string {
	return path + ".lock"
}

// Load reads the history at path. A missing or corrupted file yields an
// empty history.
func Load(path string) (*History, error) {
	var h History
	if err := storage.LoadJSON(path, &h); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		// Corrupted - start fresh
		return &History{}, nil
	}
	return &h, nil
}

// Record appends e to the history at path, keeping at most limit entries.
// Concurrent hook runs are serialized through a lock file next to it.
func Record(path string, e Entry, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return storage.WithLock(lockPath(path), func() error {
		h, err := Load(path)
		if err != nil {
			return err
		}
		h.Entries = append(h.Entries, e)
		if n := len(h.Entries); n > limit {
			h.Entries = h.Entries[n-limit:]
		}
		return storage.SaveJSON(path, h)
	})
}

// Last returns up to n of the most recent entries, newest first, optionally
// limited to one hook.
func (h *History) Last(n int, hook string) []Entry {
	var entries []Entry
	for i := len(h.Entries) - 1; i >= 0 && (n <= 0 || len(entries) < n); i-- {
		if hook != "" && h.Entries[i].Hook != hook {
			continue
		}
		entries = append(entries, h.Entries[i])
	}
	return entries
}
