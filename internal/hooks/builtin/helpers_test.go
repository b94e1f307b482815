package builtin

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/git"
	"github.com/raphi011/hooked/internal/hooks"
)

type fakeIO struct {
	lines []string
	args  map[string]string
	stdin []string
}

func (f *fakeIO) Write(lines ...string)       { f.lines = append(f.lines, lines...) }
func (f *fakeIO) Argument(name string) string { return f.args[name] }
func (f *fakeIO) StandardInput() []string     { return f.stdin }

type fakeRepo struct {
	dir      string
	branch   string
	staged   []string
	changed  []string
	subjects map[string][]string // joined revs -> subjects
}

func (r *fakeRepo) Dir() string                                   { return r.dir }
func (r *fakeRepo) GitDir(context.Context) (string, error)        { return filepath.Join(r.dir, ".git"), nil }
func (r *fakeRepo) CurrentBranch(context.Context) (string, error) { return r.branch, nil }
func (r *fakeRepo) CommentChar(context.Context) string            { return "#" }
func (r *fakeRepo) StagedFiles(context.Context) ([]string, error) { return r.staged, nil }

func (r *fakeRepo) ChangedFiles(context.Context, string, string) ([]string, error) {
	return r.changed, nil
}

func (r *fakeRepo) CommitFiles(context.Context, ...string) ([]string, error) {
	return r.changed, nil
}

func (r *fakeRepo) CommitSubjects(_ context.Context, revs ...string) ([]string, error) {
	return r.subjects[strings.Join(revs, " ")], nil
}

func (r *fakeRepo) CommitMessage(path, commentChar string) (git.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return git.Message{}, err
	}
	return git.ParseMessage(string(data), commentChar), nil
}

func newContext(t *testing.T, hook string) (*hooks.Context, *fakeIO, *fakeRepo) {
	t.Helper()
	io := &fakeIO{args: map[string]string{}}
	repo := &fakeRepo{dir: t.TempDir(), branch: "main", subjects: map[string][]string{}}
	hc := &hooks.Context{
		Hook:   hook,
		Config: config.New("hooked.toml", true, config.Settings{}),
		IO:     io,
		Repo:   repo,
	}
	return hc, io, repo
}

// withMessage writes msg to a commit message file and passes it as the
// "file" argument.
func withMessage(t *testing.T, io *fakeIO, msg string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(msg), 0644); err != nil {
		t.Fatal(err)
	}
	io.args["file"] = path
}
