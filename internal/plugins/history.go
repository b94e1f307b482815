package plugins

import (
	"context"
	"time"

	"github.com/raphi011/hooked/internal/history"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/log"
)

// History appends every hook run to <git-dir>/hooked/history.json.
// The "limit" option caps the number of kept runs.
type History struct {
	hooks.NopPlugin

	limit int
	start time.Time
	now   func() time.Time
}

// NewHistory creates a History plugin from its options.
func NewHistory(opts hooks.Options) (hooks.Plugin, error) {
	return &History{
		limit: opts.Int("limit", history.DefaultLimit),
		now:   time.Now,
	}, nil
}

func (h *History) BeforeHook(context.Context, *hooks.Context) error {
	h.start = h.now()
	return nil
}

func (h *History) AfterHook(ctx context.Context, hc *hooks.Context, results []hooks.Result) error {
	gitDir, err := hc.Repo.GitDir(ctx)
	if err != nil {
		return err
	}
	branch, err := hc.Repo.CurrentBranch(ctx)
	if err != nil {
		log.FromContext(ctx).Debug("history: no branch", "error", err)
	}

	entry := history.Entry{
		Hook:     hc.Hook,
		Branch:   branch,
		Time:     h.start,
		Duration: h.now().Sub(h.start),
	}
	for _, r := range results {
		switch r.Status {
		case hooks.StatusPassed:
			entry.Passed++
		case hooks.StatusSkipped:
			entry.Skipped++
		case hooks.StatusFailed:
			entry.Failed = append(entry.Failed, r.Action.Name())
		}
	}
	return history.Record(history.Path(gitDir), entry, h.limit)
}
