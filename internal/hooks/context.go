package hooks

import (
	"context"
	"os"
	"strings"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/git"
	"github.com/raphi011/hooked/internal/githook"
)

// IO is the console a hook run writes to and reads its input from.
type IO interface {
	Write(lines ...string)
	Argument(name string) string
	StandardInput() []string
}

// Repository is the read-only view of the git repository a hook runs in.
type Repository interface {
	Dir() string
	GitDir(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
	CommentChar(ctx context.Context) string
	CommitMessage(path, commentChar string) (git.Message, error)
	CommitSubjects(ctx context.Context, revs ...string) ([]string, error)
	StagedFiles(ctx context.Context) ([]string, error)
	ChangedFiles(ctx context.Context, from, to string) ([]string, error)
	CommitFiles(ctx context.Context, revs ...string) ([]string, error)
}

// Context is the state shared by everything that runs during one hook
// invocation: extensions, conditions and plugins.
type Context struct {
	Hook   string
	Config *config.Config
	IO     IO
	Repo   Repository

	// Env holds extra "KEY=value" entries for child processes.
	// Later entries win.
	Env []string
}

// Setenv adds an environment variable for commands run by this hook.
func (c *Context) Setenv(key, value string) {
	c.Env = append(c.Env, key+"="+value)
}

// Getenv looks up key in Env first, then in the process environment.
func (c *Context) Getenv(key string) (string, bool) {
	for i := len(c.Env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(c.Env[i], "="); ok && k == key {
			return v, true
		}
	}
	return os.LookupEnv(key)
}

// CommitMessage reads the message file passed to commit-msg or
// prepare-commit-msg, stripping comments with the repository's comment char.
func (c *Context) CommitMessage(ctx context.Context) (git.Message, error) {
	file := c.IO.Argument("file")
	if file == "" {
		return git.Message{}, &MissingContextError{Hook: c.Hook, Argument: "file"}
	}
	return c.Repo.CommitMessage(file, c.Repo.CommentChar(ctx))
}

// ChangedFiles returns the files changed by the operation that triggered
// the hook: the checked out range for post-checkout, the merged range for
// post-merge, the pushed commits for pre-push and the last reflog step
// otherwise. A new branch contributes every commit not yet on a remote.
func (c *Context) ChangedFiles(ctx context.Context) ([]string, error) {
	switch c.Hook {
	case githook.PostCheckout:
		return c.Repo.ChangedFiles(ctx, c.IO.Argument("previous-head"), c.IO.Argument("new-head"))
	case githook.PostMerge:
		return c.Repo.ChangedFiles(ctx, "ORIG_HEAD", "HEAD")
	case githook.PrePush:
		var files []string
		for _, ref := range ParsePushRefs(c.IO.StandardInput()) {
			if ref.IsDeletion() {
				continue
			}
			var changed []string
			var err error
			if ref.IsNewBranch() {
				changed, err = c.Repo.CommitFiles(ctx, ref.Range()...)
			} else {
				changed, err = c.Repo.ChangedFiles(ctx, ref.RemoteSHA, ref.LocalSHA)
			}
			if err != nil {
				return nil, err
			}
			files = appendUnique(files, changed...)
		}
		return files, nil
	default:
		return c.Repo.ChangedFiles(ctx, "", "HEAD")
	}
}

func appendUnique(list []string, items ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		seen[s] = true
	}
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			list = append(list, s)
		}
	}
	return list
}
