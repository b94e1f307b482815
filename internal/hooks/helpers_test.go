package hooks

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/git"
)

// fakeIO records written lines and serves fixed arguments and stdin.
type fakeIO struct {
	lines []string
	args  map[string]string
	stdin []string
}

func (f *fakeIO) Write(lines ...string)       { f.lines = append(f.lines, lines...) }
func (f *fakeIO) Argument(name string) string { return f.args[name] }
func (f *fakeIO) StandardInput() []string     { return f.stdin }

func (f *fakeIO) output() string {
	return strings.Join(f.lines, "\n")
}

// fakeRepo serves canned repository state. Commit messages are read from
// disk so the message file argument behaves like it does under git.
type fakeRepo struct {
	dir         string
	branch      string
	commentChar string
	staged      []string
	changed     map[string][]string // "from..to" -> files
	subjects    []string
	err         error
}

func newFakeRepo(t *testing.T) *fakeRepo {
	t.Helper()
	return &fakeRepo{dir: t.TempDir(), branch: "main", commentChar: "#", changed: map[string][]string{}}
}

func (r *fakeRepo) Dir() string { return r.dir }

func (r *fakeRepo) GitDir(context.Context) (string, error) {
	return filepath.Join(r.dir, ".git"), r.err
}

func (r *fakeRepo) CurrentBranch(context.Context) (string, error) { return r.branch, r.err }

func (r *fakeRepo) CommentChar(context.Context) string { return r.commentChar }

func (r *fakeRepo) CommitMessage(path, commentChar string) (git.Message, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return git.Message{}, err
	}
	return git.ParseMessage(string(data), commentChar), nil
}

func (r *fakeRepo) CommitSubjects(context.Context, ...string) ([]string, error) {
	return r.subjects, r.err
}

func (r *fakeRepo) StagedFiles(context.Context) ([]string, error) { return r.staged, r.err }

func (r *fakeRepo) ChangedFiles(_ context.Context, from, to string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.changed[from+".."+to], nil
}

func (r *fakeRepo) CommitFiles(_ context.Context, revs ...string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.changed[strings.Join(revs, " ")], nil
}

// writeMessage writes a commit message file into the fake repo and returns
// its path.
func (r *fakeRepo) writeMessage(t *testing.T, msg string) string {
	t.Helper()
	path := filepath.Join(r.dir, "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(msg), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// recorder is a test extension that records calls and fails on demand.
type recorder struct {
	calls []string
}

func (rec *recorder) extension(_ context.Context, _ *Context, opts Options) error {
	id := opts.String("id", "?")
	rec.calls = append(rec.calls, id)
	if opts.Bool("fail", false) {
		return errors.New(id + " failed")
	}
	return nil
}

func newTestRegistry(rec *recorder) *Registry {
	reg := NewRegistry()
	reg.RegisterExtension("record", rec.extension)
	reg.RegisterCondition("always", func(context.Context, *Context, Options) (bool, error) { return true, nil })
	reg.RegisterCondition("never", func(context.Context, *Context, Options) (bool, error) { return false, nil })
	return reg
}

// recordAction returns an action calling the "record" extension.
func recordAction(id string, fail bool) config.ActionConfig {
	a := config.NewAction("::record")
	a.Options["id"] = id
	a.Options["fail"] = fail
	return a
}

// newTestConfig returns a file-backed config with the given hook enabled
// and holding actions.
func newTestConfig(t *testing.T, settings config.Settings, hook string, actions ...config.ActionConfig) *config.Config {
	t.Helper()
	cfg := config.New("hooked.toml", true, settings)
	h, err := cfg.Hook(hook)
	if err != nil {
		t.Fatal(err)
	}
	h.SetEnabled(true)
	for _, a := range actions {
		h.AddAction(a)
	}
	return cfg
}

func newTestContext(t *testing.T, cfg *config.Config, hook string) (*Context, *fakeIO, *fakeRepo) {
	t.Helper()
	io := &fakeIO{args: map[string]string{}}
	repo := newFakeRepo(t)
	return &Context{Hook: hook, Config: cfg, IO: io, Repo: repo}, io, repo
}

// newGitRepo creates a repository on main with README.md committed.
func newGitRepo(t *testing.T) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	gitRun(t, resolved, "init", "-b", "main")
	gitRun(t, resolved, "config", "user.email", "test@test.com")
	gitRun(t, resolved, "config", "user.name", "Test User")
	gitRun(t, resolved, "config", "commit.gpgsign", "false")
	commitFile(t, resolved, "README.md")
	return resolved
}

func commitFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	gitRun(t, dir, "add", name)
	gitRun(t, dir, "commit", "-m", "Add "+name)
}

// gitRun runs git in dir and returns its trimmed stdout.
func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}

func gitContext(dir, hook string) *Context {
	cfg := config.New("hooked.toml", true, config.Settings{})
	return &Context{Hook: hook, Config: cfg, IO: &fakeIO{args: map[string]string{}}, Repo: git.NewRepository(dir)}
}
