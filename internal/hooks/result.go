package hooks

import (
	"time"

	"github.com/raphi011/hooked/internal/config"
)

// Status is the outcome of one action.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of executing one action.
type Result struct {
	Action   config.ActionConfig
	Status   Status
	Output   string         // captured command output, or the skip reason
	Failure  *ActionFailure // set when Status is StatusFailed
	Duration time.Duration
}

// Failed reports whether the action failed.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// Blocking reports whether the failure counts against the hook.
// Failures of actions with allow-failure set do not.
func (r Result) Blocking() bool {
	return r.Failed() && !r.Action.AllowFailure
}

func passed(a config.ActionConfig, output string) Result {
	return Result{Action: a, Status: StatusPassed, Output: output}
}

func skipped(a config.ActionConfig, reason string) Result {
	return Result{Action: a, Status: StatusSkipped, Output: reason}
}

func failed(a config.ActionConfig, message string) Result {
	return Result{
		Action:  a,
		Status:  StatusFailed,
		Output:  message,
		Failure: &ActionFailure{Action: a.Name(), Message: message},
	}
}
