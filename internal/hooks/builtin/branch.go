package builtin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/hooked/internal/hooks"
)

// BranchNaming requires the current branch name to match a regular
// expression. Detached HEAD passes.
//
// Options:
//   - regex: the pattern, required
//   - error: message shown when the pattern does not match
func BranchNaming(ctx context.Context, hc *hooks.Context, opts hooks.Options) error {
	re, err := compileOption(opts, "regex")
	if err != nil {
		return err
	}
	branch, err := hc.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch == "(detached)" {
		return nil
	}
	if !re.MatchString(branch) {
		return errors.New(opts.String("error", fmt.Sprintf("branch %q does not match %q", branch, re.String())))
	}
	return nil
}

// BlockFixupPush fails a push that contains "fixup!" or "squash!" commits.
//
// Options:
//   - branches: only check pushes to these remote branches (default all)
func BlockFixupPush(ctx context.Context, hc *hooks.Context, opts hooks.Options) error {
	protected := opts.Strings("branches")

	var blocked []string
	for _, ref := range hooks.ParsePushRefs(hc.IO.StandardInput()) {
		if ref.IsDeletion() {
			continue
		}
		branch := strings.TrimPrefix(ref.RemoteRef, "refs/heads/")
		if len(protected) > 0 && !matchAny(protected, branch) {
			continue
		}
		subjects, err := hc.Repo.CommitSubjects(ctx, ref.Range()...)
		if err != nil {
			return err
		}
		for _, s := range subjects {
			if strings.HasPrefix(s, "fixup!") || strings.HasPrefix(s, "squash!") {
				blocked = append(blocked, fmt.Sprintf("%s: %s", branch, s))
			}
		}
	}
	if len(blocked) > 0 {
		return fmt.Errorf("push contains fixup commits:\n  %s", strings.Join(blocked, "\n  "))
	}
	return nil
}
