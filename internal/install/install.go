// Package install writes hook scripts into a repository's hooks directory.
//
// Each script is a small shell shim that hands the invocation to
// "hooked hook <name>", passing git's arguments and stdin through.
package install

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// marker identifies scripts written by hooked.
const marker = "# installed by hooked"

// Status describes what happened to one hook script.
type Status string

const (
	StatusInstalled   Status = "installed"
	StatusOverwritten Status = "overwritten"
	StatusSkipped     Status = "skipped" // foreign script kept
	StatusRemoved     Status = "removed"
)

// Result is the outcome for one hook.
type Result struct {
	Hook   string
	Path   string
	Status Status
}

// Options control Install.
type Options struct {
	Binary string // command the shim runs, "hooked" if empty
	Force  bool   // replace scripts not written by hooked
}

// Shim returns the script installed for hook.
func Shim(binary, hook string) string {
	if binary == "" {
		binary = "hooked"
	}
	return fmt.Sprintf("#!/bin/sh\n%s\nexec %s hook %s \"$@\"\n", marker, shellQuote(binary), hook)
}

// IsShim reports whether the script at path was written by hooked.
func IsShim(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return bytes.Contains(data, []byte(marker)), nil
}

// Install writes a shim for every hook into dir. Existing hooked shims are
// replaced; other scripts are kept unless opts.Force is set.
func Install(dir string, hooks []string, opts Options) ([]Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create hooks dir: %w", err)
	}

	var results []Result
	for _, hook := range hooks {
		path := filepath.Join(dir, hook)
		status := StatusInstalled

		if _, err := os.Stat(path); err == nil {
			ours, err := IsShim(path)
			if err != nil {
				return results, err
			}
			if !ours && !opts.Force {
				results = append(results, Result{Hook: hook, Path: path, Status: StatusSkipped})
				continue
			}
			status = StatusOverwritten
		}

		if err := os.WriteFile(path, []byte(Shim(opts.Binary, hook)), 0755); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", path, err)
		}
		// WriteFile keeps the mode of existing files
		if err := os.Chmod(path, 0755); err != nil {
			return results, fmt.Errorf("failed to chmod %s: %w", path, err)
		}
		results = append(results, Result{Hook: hook, Path: path, Status: status})
	}
	return results, nil
}

// Uninstall removes hooked shims for the given hooks from dir. Scripts not
// written by hooked are left alone.
func Uninstall(dir string, hooks []string) ([]Result, error) {
	var results []Result
	for _, hook := range hooks {
		path := filepath.Join(dir, hook)
		ours, err := IsShim(path)
		if err != nil {
			return results, err
		}
		if !ours {
			continue
		}
		if err := os.Remove(path); err != nil {
			return results, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		results = append(results, Result{Hook: hook, Path: path, Status: StatusRemoved})
	}
	return results, nil
}

// shellQuote quotes s unless it only contains safe characters.
func shellQuote(s string) string {
	safe := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("/._-+", r))
	}) == -1
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
