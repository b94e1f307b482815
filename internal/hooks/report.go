package hooks

import (
	"fmt"
	"time"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/output"
)

// reporter writes the progress of a run to the console.
// Quiet runs only print failures; verbose runs also print the output of
// passing commands.
type reporter struct {
	io        IO
	verbosity string
}

func newReporter(io IO, verbosity string) *reporter {
	return &reporter{io: io, verbosity: verbosity}
}

func (r *reporter) quiet() bool {
	return r.verbosity == config.VerbosityQuiet
}

func (r *reporter) verbose() bool {
	return r.verbosity == config.VerbosityVerbose || r.verbosity == config.VerbosityDebug
}

func (r *reporter) header(hook string) {
	if r.quiet() {
		return
	}
	r.io.Write(output.Header("hooked: " + hook))
}

// skipped reports a hook that ended before running any action.
func (r *reporter) skipped(hook string) {
	if r.quiet() {
		return
	}
	r.io.Write(output.Skipped(output.SymbolSkipped) + " " + hook + ": skipped")
}

func (r *reporter) result(res Result) {
	name := res.Action.Name()
	switch res.Status {
	case StatusPassed:
		if r.quiet() {
			return
		}
		r.io.Write(fmt.Sprintf(" %s %s %s", output.Passed(output.SymbolPassed), name, output.Muted(res.Duration.Round(time.Millisecond).String())))
		if r.verbose() && res.Output != "" {
			r.io.Write(output.Indent(res.Output, "   "))
		}
	case StatusSkipped:
		if r.quiet() {
			return
		}
		r.io.Write(fmt.Sprintf(" %s %s %s", output.Skipped(output.SymbolSkipped), name, output.Muted("(skipped)")))
		if r.verbose() && res.Output != "" {
			r.io.Write(output.Muted(output.Indent(res.Output, "   ")))
		}
	case StatusFailed:
		line := fmt.Sprintf(" %s %s", output.Failed(output.SymbolFailed), name)
		if res.Action.AllowFailure {
			line += " " + output.Muted("(failure allowed)")
		}
		r.io.Write(line)
		if res.Output != "" {
			r.io.Write(output.Indent(res.Output, "   "))
		}
	}
}

// allowed prints the summary of a failed run that is allowed to fail.
func (r *reporter) allowed(hook string, failures int) {
	r.io.Write(output.Skipped(fmt.Sprintf("hooked: %s had %d failing action(s), failures allowed", hook, failures)))
}
