package githook

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// InvalidHookError is returned when a hook name is neither concrete nor virtual.
type InvalidHookError struct {
	Name        string
	Suggestions []string // closest known hook names, best match first
}

func (e *InvalidHookError) Error() string {
	msg := fmt.Sprintf("invalid hook %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// maxSuggestions caps the number of names offered in an InvalidHookError.
const maxSuggestions = 3

func newInvalidHookError(name string) *InvalidHookError {
	return NewInvalidHookError(name, All())
}

// NewInvalidHookError creates an InvalidHookError suggesting the names from
// candidates closest to name.
func NewInvalidHookError(name string, candidates []string) *InvalidHookError {
	err := &InvalidHookError{Name: name}
	if name == "" {
		return err
	}
	for _, m := range fuzzy.Find(name, candidates) {
		err.Suggestions = append(err.Suggestions, m.Str)
		if len(err.Suggestions) == maxSuggestions {
			break
		}
	}
	return err
}
