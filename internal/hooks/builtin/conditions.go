package builtin

import (
	"context"
	"errors"

	"github.com/raphi011/hooked/internal/hooks"
)

// OnBranch holds when the current branch matches one of the globs in the
// "name" argument (string or list).
func OnBranch(ctx context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	names := args.Strings("name")
	if len(names) == 0 {
		return false, errors.New(`argument "name" is required`)
	}
	branch, err := hc.Repo.CurrentBranch(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if matchGlob(n, branch) {
			return true, nil
		}
	}
	return false, nil
}

// FileStagedAny holds when any staged file matches one of the "files" globs.
func FileStagedAny(ctx context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	return filesMatch(ctx, hc, args, stagedFiles, false)
}

// FileStagedAll holds when every "files" glob matches at least one staged file.
func FileStagedAll(ctx context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	return filesMatch(ctx, hc, args, stagedFiles, true)
}

// FileChangedAny holds when any file changed by the triggering operation
// matches one of the "files" globs.
func FileChangedAny(ctx context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	return filesMatch(ctx, hc, args, changedFiles, false)
}

// FileChangedAll holds when every "files" glob matches at least one changed file.
func FileChangedAll(ctx context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	return filesMatch(ctx, hc, args, changedFiles, true)
}

// EnvSet holds when the environment variable "name" is set and not empty.
func EnvSet(_ context.Context, hc *hooks.Context, args hooks.Options) (bool, error) {
	name := args.String("name", "")
	if name == "" {
		return false, errors.New(`argument "name" is required`)
	}
	v, _ := hc.Getenv(name)
	return v != "", nil
}

type fileLister func(ctx context.Context, hc *hooks.Context) ([]string, error)

func stagedFiles(ctx context.Context, hc *hooks.Context) ([]string, error) {
	return hc.Repo.StagedFiles(ctx)
}

func changedFiles(ctx context.Context, hc *hooks.Context) ([]string, error) {
	return hc.ChangedFiles(ctx)
}

func filesMatch(ctx context.Context, hc *hooks.Context, args hooks.Options, list fileLister, all bool) (bool, error) {
	patterns := args.Strings("files")
	if len(patterns) == 0 {
		return false, errors.New(`argument "files" is required`)
	}
	files, err := list(ctx, hc)
	if err != nil {
		return false, err
	}

	for _, p := range patterns {
		matched := false
		for _, f := range files {
			if matchGlob(p, f) {
				matched = true
				break
			}
		}
		if all && !matched {
			return false, nil
		}
		if !all && matched {
			return true, nil
		}
	}
	return all, nil
}
