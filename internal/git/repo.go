package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCommentChar is git's comment character when core.commentChar is unset.
const DefaultCommentChar = "#"

// Repository gives read access to a git work tree.
type Repository struct {
	dir string
}

// NewRepository returns an accessor for the work tree at dir.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Open returns an accessor for the top level of the work tree containing dir.
func Open(ctx context.Context, dir string) (*Repository, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return NewRepository(strings.TrimSpace(string(output))), nil
}

// Dir returns the work tree root.
func (r *Repository) Dir() string {
	return r.dir
}

// GitDir returns the absolute path of the .git directory.
func (r *Repository) GitDir(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, r.dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to get git dir: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// HooksDir returns the directory git runs hooks from, honoring core.hooksPath.
func (r *Repository) HooksDir(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, r.dir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to get hooks dir: %w", err)
	}
	path := strings.TrimSpace(string(output))
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	return path, nil
}

// CurrentBranch returns the current branch name.
// Returns "(detached)" for detached HEAD state.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, r.dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// ConfigValue returns a git config value, or fallback if it is unset or
// cannot be read.
func (r *Repository) ConfigValue(ctx context.Context, key, fallback string) string {
	output, err := outputGit(ctx, r.dir, "config", "--get", key)
	if err != nil {
		return fallback
	}
	value := strings.TrimSpace(string(output))
	if value == "" {
		return fallback
	}
	return value
}

// CommentChar returns core.commentChar, "#" when unset. The value "auto"
// also maps to "#" since git picks the character per message in that case.
func (r *Repository) CommentChar(ctx context.Context) string {
	c := r.ConfigValue(ctx, "core.commentChar", DefaultCommentChar)
	if c == "auto" {
		return DefaultCommentChar
	}
	return c
}

// StagedFiles returns paths added, copied, modified or renamed in the index.
func (r *Repository) StagedFiles(ctx context.Context) ([]string, error) {
	output, err := outputGit(ctx, r.dir, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return splitLines(string(output)), nil
}

// ChangedFiles returns paths that differ between two revisions.
// An empty from compares against the previous reflog entry of to, then its
// parent, then the empty tree, so the first commit of a repository lists
// all of its files. An all-zero from (git's null sha) is the empty tree.
func (r *Repository) ChangedFiles(ctx context.Context, from, to string) ([]string, error) {
	if to == "" {
		to = "HEAD"
	}
	base, err := r.diffBase(ctx, from, to)
	if err != nil {
		return nil, err
	}
	output, err := outputGit(ctx, r.dir, "diff", "--name-only", "--diff-filter=ACMR", base, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	return splitLines(string(output)), nil
}

// CommitFiles returns the paths touched by the commits selected by revs,
// e.g. "<sha> --not --remotes". Each path is listed once.
func (r *Repository) CommitFiles(ctx context.Context, revs ...string) ([]string, error) {
	args := append([]string{"log", "--name-only", "--format=", "--diff-filter=ACMR"}, revs...)
	output, err := outputGit(ctx, r.dir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commit files: %w", err)
	}
	var files []string
	seen := make(map[string]bool)
	for _, f := range splitLines(string(output)) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	return files, nil
}

// diffBase picks the revision ChangedFiles compares against.
func (r *Repository) diffBase(ctx context.Context, from, to string) (string, error) {
	switch {
	case isNullSHA(from):
		return r.emptyTree(ctx)
	case from != "":
		return from, nil
	}
	for _, rev := range []string{to + "@{1}", to + "~1"} {
		if r.isCommit(ctx, rev) {
			return rev, nil
		}
	}
	return r.emptyTree(ctx)
}

// isCommit reports whether rev resolves to a commit.
func (r *Repository) isCommit(ctx context.Context, rev string) bool {
	_, err := outputGit(ctx, r.dir, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	return err == nil
}

// emptyTree returns the id of the empty tree in the repository's hash format.
func (r *Repository) emptyTree(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, r.dir, "hash-object", "-t", "tree", "--stdin")
	if err != nil {
		return "", fmt.Errorf("failed to hash empty tree: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func isNullSHA(rev string) bool {
	return rev != "" && strings.Trim(rev, "0") == ""
}

// CommitSubjects returns the subject lines of the commits selected by revs,
// newest first. revs are passed to git log as-is, e.g. "origin/main..HEAD".
func (r *Repository) CommitSubjects(ctx context.Context, revs ...string) ([]string, error) {
	args := append([]string{"log", "--format=%s"}, revs...)
	output, err := outputGit(ctx, r.dir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	return splitLines(string(output)), nil
}

// CommitMessage reads the commit message file at path, relative paths being
// resolved against the work tree.
func (r *Repository) CommitMessage(path, commentChar string) (Message, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("failed to read commit message: %w", err)
	}
	return ParseMessage(string(data), commentChar), nil
}

func splitLines(s string) []string {
	var lines []string
	for line := range strings.SplitSeq(strings.TrimSpace(s), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
