package plugins

import (
	"context"
	"testing"
	"time"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/git"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/history"
	"github.com/raphi011/hooked/internal/hooks"
)

type fakeRepo struct {
	gitDir string
	branch string
}

func (r *fakeRepo) Dir() string                                       { return "" }
func (r *fakeRepo) GitDir(context.Context) (string, error)            { return r.gitDir, nil }
func (r *fakeRepo) CurrentBranch(context.Context) (string, error)     { return r.branch, nil }
func (r *fakeRepo) CommentChar(context.Context) string                { return git.DefaultCommentChar }
func (r *fakeRepo) StagedFiles(context.Context) ([]string, error)     { return nil, nil }
func (r *fakeRepo) CommitMessage(string, string) (git.Message, error) { return git.Message{}, nil }
func (r *fakeRepo) CommitSubjects(context.Context, ...string) ([]string, error) {
	return nil, nil
}
func (r *fakeRepo) ChangedFiles(context.Context, string, string) ([]string, error) {
	return nil, nil
}

func (r *fakeRepo) CommitFiles(context.Context, ...string) ([]string, error) {
	return nil, nil
}

func TestHistory(t *testing.T) {
	t.Parallel()

	p, err := NewHistory(hooks.Options{"limit": int64(2)})
	if err != nil {
		t.Fatal(err)
	}
	plugin := p.(*History)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	plugin.now = func() time.Time { return clock }

	repo := &fakeRepo{gitDir: t.TempDir(), branch: "feature"}
	hc := &hooks.Context{Hook: githook.PreCommit, Repo: repo}
	results := []hooks.Result{
		{Action: config.NewAction("lint"), Status: hooks.StatusPassed},
		{Action: config.NewAction("test"), Status: hooks.StatusSkipped},
		{Action: config.NewAction("vet"), Status: hooks.StatusFailed},
	}

	ctx := context.Background()
	for range 3 {
		if err := plugin.BeforeHook(ctx, hc); err != nil {
			t.Fatal(err)
		}
		clock = clock.Add(time.Second)
		if err := plugin.AfterHook(ctx, hc, results); err != nil {
			t.Fatalf("AfterHook() error = %v", err)
		}
	}

	h, err := history.Load(history.Path(repo.gitDir))
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(h.Entries))
	}
	e := h.Entries[1]
	if e.Hook != githook.PreCommit || e.Branch != "feature" {
		t.Errorf("entry = %+v", e)
	}
	if e.Passed != 1 || e.Skipped != 1 || len(e.Failed) != 1 || e.Failed[0] != "vet" {
		t.Errorf("entry counts = %+v", e)
	}
	if e.Duration != time.Second {
		t.Errorf("Duration = %s, want 1s", e.Duration)
	}
}
