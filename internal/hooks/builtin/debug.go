package builtin

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/hooks"
)

// Debug prints the hook name, its arguments and stdin. It always passes.
func Debug(_ context.Context, hc *hooks.Context, opts hooks.Options) error {
	printDebug(hc, opts)
	return nil
}

// DebugFail prints like Debug and then fails, to abort a git operation
// while testing a configuration.
func DebugFail(_ context.Context, hc *hooks.Context, opts hooks.Options) error {
	printDebug(hc, opts)
	return errors.New("debug action failed on purpose")
}

func printDebug(hc *hooks.Context, opts hooks.Options) {
	hc.IO.Write("hook: " + hc.Hook)
	for _, name := range githook.Arguments(hc.Hook) {
		hc.IO.Write(fmt.Sprintf("  arg %s: %s", name, hc.IO.Argument(name)))
	}
	for _, line := range hc.IO.StandardInput() {
		hc.IO.Write("  stdin: " + line)
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		hc.IO.Write(fmt.Sprintf("  option %s: %v", k, opts[k]))
	}
}
