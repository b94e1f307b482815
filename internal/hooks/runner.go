package hooks

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/log"
)

// SkipEnv disables all hooks when set to "1".
const SkipEnv = "HOOKED_SKIP_HOOKS"

// Deps are the collaborators of a Runner.
type Deps struct {
	Config   *config.Config
	IO       IO
	Repo     Repository
	Registry *Registry

	// Verbosity overrides the configured verbosity when set.
	Verbosity string
}

// precondition runs before any action. skip=true ends the run successfully.
type precondition func(ctx context.Context, hc *Context) (skip bool, err error)

var preconditions = map[string]precondition{
	githook.CommitMsg:        skipFixupCommits,
	githook.PrepareCommitMsg: requireArgument("file"),
}

// Runner runs the actions of one concrete hook.
type Runner struct {
	name string
	deps Deps
}

// NewRunner creates a runner for a concrete hook.
// Virtual and unknown hook names are rejected with *githook.InvalidHookError.
func NewRunner(name string, deps Deps) (*Runner, error) {
	if !githook.IsConcrete(name) {
		return nil, githook.NewInvalidHookError(name, githook.Concrete())
	}
	if deps.Registry == nil {
		deps.Registry = NewRegistry()
	}
	return &Runner{name: name, deps: deps}, nil
}

// Name returns the hook this runner executes.
func (r *Runner) Name() string {
	return r.name
}

// Run executes the hook. It returns *MissingContextError when git did not
// pass a required argument and *HookFailedError when actions failed and
// failures are not allowed.
func (r *Runner) Run(ctx context.Context) error {
	l := log.FromContext(ctx)
	cfg := r.deps.Config

	if os.Getenv(SkipEnv) == "1" {
		l.Debug("hooks skipped by environment", "hook", r.name, "env", SkipEnv)
		return nil
	}
	if !cfg.IsHookEnabled(r.name) {
		l.Debug("hook disabled", "hook", r.name)
		return nil
	}

	hc := &Context{
		Hook:   r.name,
		Config: cfg,
		IO:     r.deps.IO,
		Repo:   r.deps.Repo,
	}
	hc.Setenv("HOOKED_HOOK", r.name)

	verbosity := r.deps.Verbosity
	if verbosity == "" {
		verbosity = cfg.Verbosity()
	}
	rep := newReporter(hc.IO, verbosity)

	if pre, ok := preconditions[r.name]; ok {
		skip, err := pre(ctx, hc)
		if err != nil {
			return err
		}
		if skip {
			rep.skipped(r.name)
			return nil
		}
	}

	hook, err := cfg.HookToExecute(r.name)
	if err != nil {
		return err
	}
	if len(hook.Actions) == 0 {
		l.Debug("no actions configured", "hook", r.name)
		return nil
	}

	plugins, err := r.deps.Registry.Plugins(cfg)
	if err != nil {
		return err
	}
	for _, p := range plugins {
		if err := p.BeforeHook(ctx, hc); err != nil {
			return fmt.Errorf("plugin: %w", err)
		}
	}

	rep.header(r.name)

	exec := NewExecutor(hc, r.deps.Registry)
	var (
		results  []Result
		failures []ActionFailure
	)
	for _, action := range hook.Actions {
		for _, p := range plugins {
			if err := p.BeforeAction(ctx, hc, action); err != nil {
				return fmt.Errorf("plugin: %w", err)
			}
		}

		res := exec.Execute(ctx, action)
		results = append(results, res)
		rep.result(res)

		for _, p := range plugins {
			if err := p.AfterAction(ctx, hc, action, res); err != nil {
				l.Printf("Warning: plugin failed after %s: %v\n", action.Name(), err)
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if res.Blocking() {
			failures = append(failures, *res.Failure)
			if cfg.FailOnFirstError() {
				break
			}
		}
	}

	for _, p := range plugins {
		if err := p.AfterHook(ctx, hc, results); err != nil {
			l.Printf("Warning: plugin failed after hook: %v\n", err)
		}
	}

	if len(failures) == 0 {
		return nil
	}
	if cfg.IsFailureAllowed() {
		rep.allowed(r.name, len(failures))
		return nil
	}
	return &HookFailedError{Hook: r.name, Failures: failures}
}

// skipFixupCommits skips commit-msg for "fixup!" and "squash!" commits,
// which get their final message during autosquash.
func skipFixupCommits(ctx context.Context, hc *Context) (bool, error) {
	msg, err := hc.CommitMessage(ctx)
	if err != nil {
		return false, err
	}
	if msg.IsFixup() {
		log.FromContext(ctx).Debug("fixup commit", "subject", msg.Subject())
		return true, nil
	}
	return false, nil
}

func requireArgument(name string) precondition {
	return func(_ context.Context, hc *Context) (bool, error) {
		if hc.IO.Argument(name) == "" {
			return false, &MissingContextError{Hook: hc.Hook, Argument: name}
		}
		return false, nil
	}
}
