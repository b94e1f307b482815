package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/hooked/internal/log"
)

// RunContext executes a command in dir and returns stderr in the error
// message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command in dir and returns stdout, with stderr in
// the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	output, err := c.Output()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, errors.New(errMsg)
		}
		return nil, err
	}
	return output, nil
}

// ShellResult is the outcome of a shell command that ran to completion.
type ShellResult struct {
	Output   []byte // combined stdout and stderr
	ExitCode int
}

// Success reports whether the command exited with code 0.
func (r ShellResult) Success() bool {
	return r.ExitCode == 0
}

// Shell runs command through "sh -c" in dir with env appended to the
// process environment. A non-zero exit code is not an error; errors are
// returned only when the command could not be run or ctx was cancelled.
func Shell(ctx context.Context, dir string, env []string, command string) (ShellResult, error) {
	c := exec.CommandContext(ctx, "sh", "-c", command)
	c.Dir = dir
	if len(env) > 0 {
		c.Env = append(c.Environ(), env...)
	}

	done := log.FromContext(ctx).Command(dir, "sh", "-c", command)
	start := time.Now()
	output, err := c.CombinedOutput()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ShellResult{}, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ShellResult{Output: output, ExitCode: exitErr.ExitCode()}, nil
		}
		return ShellResult{}, err
	}
	return ShellResult{Output: output}, nil
}
