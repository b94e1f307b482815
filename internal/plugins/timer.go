package plugins

import (
	"context"
	"fmt"
	"time"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/log"
	"github.com/raphi011/hooked/internal/output"
)

// Timer reports how long the hook took. Actions slower than the "slow"
// option (a duration, default 5s) are logged.
type Timer struct {
	hooks.NopPlugin

	slow  time.Duration
	start time.Time
	now   func() time.Time
}

// NewTimer creates a Timer from its options.
func NewTimer(opts hooks.Options) (hooks.Plugin, error) {
	slow, err := time.ParseDuration(opts.String("slow", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid slow duration: %w", err)
	}
	return &Timer{slow: slow, now: time.Now}, nil
}

func (t *Timer) BeforeHook(context.Context, *hooks.Context) error {
	t.start = t.now()
	return nil
}

func (t *Timer) AfterAction(ctx context.Context, _ *hooks.Context, action config.ActionConfig, res hooks.Result) error {
	if res.Duration >= t.slow {
		log.FromContext(ctx).Printf("slow action %s took %s\n", action.Name(), res.Duration.Round(time.Millisecond))
	}
	return nil
}

func (t *Timer) AfterHook(_ context.Context, hc *hooks.Context, results []hooks.Result) error {
	elapsed := t.now().Sub(t.start).Round(time.Millisecond)
	hc.IO.Write(output.Muted(fmt.Sprintf("%s: %d action(s) in %s", hc.Hook, len(results), elapsed)))
	return nil
}
