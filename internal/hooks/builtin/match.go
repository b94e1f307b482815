package builtin

import (
	"path"
	"strings"
)

// matchGlob matches a slash separated file path against a glob. Patterns
// without a slash also match the base name, so "*.go" matches "cmd/main.go".
// A trailing "/" matches everything below a directory and a "**" segment
// matches any number of directories, so "src/**/*.go" matches both
// "src/main.go" and "src/a/b/main.go".
func matchGlob(pattern, file string) bool {
	if dir, ok := strings.CutSuffix(pattern, "/"); ok {
		return file == dir || strings.HasPrefix(file, dir+"/")
	}
	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(pattern, "/"), strings.Split(file, "/"))
	}
	if ok, _ := path.Match(pattern, file); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := path.Match(pattern, path.Base(file))
		return ok
	}
	return false
}

func matchSegments(pattern, parts []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pattern[1:], parts[i:]) {
					return true
				}
			}
			return false
		}
		if len(parts) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], parts[0]); !ok {
			return false
		}
		pattern, parts = pattern[1:], parts[1:]
	}
	return len(parts) == 0
}

// matchAny reports whether file matches any of the patterns.
func matchAny(patterns []string, file string) bool {
	for _, p := range patterns {
		if matchGlob(p, file) {
			return true
		}
	}
	return false
}
