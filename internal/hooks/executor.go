package hooks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/hooked/internal/cmd"
	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/log"
)

// Executor runs single actions.
type Executor struct {
	hc       *Context
	registry *Registry
}

// NewExecutor creates an executor for one hook run.
func NewExecutor(hc *Context, registry *Registry) *Executor {
	return &Executor{hc: hc, registry: registry}
}

// Execute evaluates the action's conditions and runs it. Failures are
// reported in the Result, never returned.
func (e *Executor) Execute(ctx context.Context, a config.ActionConfig) Result {
	start := time.Now()
	res := e.execute(ctx, a)
	res.Duration = time.Since(start)
	return res
}

func (e *Executor) execute(ctx context.Context, a config.ActionConfig) Result {
	l := log.FromContext(ctx)

	for _, cond := range a.Conditions {
		ok, err := e.evaluate(ctx, cond)
		if err != nil {
			return failed(a, fmt.Sprintf("condition %s: %v", cond.Exec, err))
		}
		if !ok {
			l.Debug("condition not met", "action", a.Name(), "condition", cond.Exec)
			return skipped(a, "condition not met: "+cond.Exec)
		}
	}

	switch a.Action.Kind {
	case config.KindExtension:
		return e.runExtension(ctx, a)
	default:
		return e.runCommand(ctx, a)
	}
}

func (e *Executor) runCommand(ctx context.Context, a config.ActionConfig) Result {
	command, err := e.hc.Substitute(ctx, a.Action.Command)
	if err != nil {
		return failed(a, err.Error())
	}
	command = wrapCommand(e.hc.Config.Run(), e.hc.Repo.Dir(), command)

	res, err := cmd.Shell(ctx, e.hc.Repo.Dir(), e.hc.Env, command)
	if err != nil {
		return failed(a, err.Error())
	}
	output := strings.TrimRight(string(res.Output), "\n")
	if !res.Success() {
		if output == "" {
			output = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		return failed(a, output)
	}
	return passed(a, output)
}

func (e *Executor) runExtension(ctx context.Context, a config.ActionConfig) Result {
	ext, ok := e.registry.Extension(a.Action.Extension)
	if !ok {
		return failed(a, fmt.Sprintf("unknown extension %q", a.Action.String()))
	}
	err := Recover(func() error {
		return ext(ctx, e.hc, Options(a.Options))
	})
	if err != nil {
		return failed(a, err.Error())
	}
	return passed(a, "")
}

// evaluate checks a single condition.
func (e *Executor) evaluate(ctx context.Context, cond config.Condition) (bool, error) {
	if cond.IsExtension() {
		check, ok := e.registry.Condition(cond.ExtensionName())
		if !ok {
			return false, errors.New("unknown condition")
		}
		return RecoverWithResult(func() (bool, error) {
			return check(ctx, e.hc, Options(cond.Args))
		})
	}

	command, err := e.hc.Substitute(ctx, cond.Exec)
	if err != nil {
		return false, err
	}
	res, err := cmd.Shell(ctx, e.hc.Repo.Dir(), e.hc.Env, command)
	if err != nil {
		return false, err
	}
	return res.Success(), nil
}

// wrapCommand prefixes command with the container command in docker mode.
// {path} in the container command is replaced by the configured run path,
// or repoDir if none is set.
func wrapCommand(run config.RunConfig, repoDir, command string) string {
	if !run.IsContainerized() {
		return command
	}
	path := run.Path
	if path == "" {
		path = repoDir
	}
	exec := strings.ReplaceAll(run.Exec, "{path}", path)
	return exec + " " + command
}
