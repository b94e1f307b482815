package hooks

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// MissingContextError reports a required hook argument that git did not
// pass. It aborts the run before any action executes.
type MissingContextError struct {
	Hook     string
	Argument string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("%s: missing required argument %q", e.Hook, e.Argument)
}

// ActionFailure describes one failed action. It is recorded in a Result and
// never returned by the Executor.
type ActionFailure struct {
	Action  string
	Message string
}

func (f ActionFailure) Error() string {
	if f.Message == "" {
		return fmt.Sprintf("action %q failed", f.Action)
	}
	return fmt.Sprintf("action %q failed: %s", f.Action, f.Message)
}

// HookFailedError is returned by a run whose actions failed.
type HookFailedError struct {
	Hook     string
	Failures []ActionFailure
}

func (e *HookFailedError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Action
	}
	return fmt.Sprintf("hook %s failed: %s", e.Hook, strings.Join(names, ", "))
}

// PanicError wraps a recovered panic with stack trace
type PanicError struct {
	Value      any
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recover wraps a function with panic recovery.
// Returns any panic as a PanicError.
func Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, StackTrace: string(debug.Stack())}
		}
	}()
	return fn()
}

// RecoverWithResult wraps a function with panic recovery and result.
func RecoverWithResult[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &PanicError{Value: r, StackTrace: string(debug.Stack())}
		}
	}()
	return fn()
}
