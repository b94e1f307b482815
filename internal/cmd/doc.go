// Package cmd provides helpers for executing external commands.
//
// [RunContext] and [OutputContext] wrap [os/exec.Cmd] to capture stderr and
// include it in error messages, making git failures more informative.
// [Shell] runs action commands through "sh -c" and reports their exit code
// and combined output instead of an error, so callers can decide what a
// failing command means.
//
// Every execution is logged through the context logger in verbose mode:
//
//	[/path/to/repo] $ git diff --cached --name-only (12ms)
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "branch", "--show-current")
//	if err != nil {
//	    // err contains stderr output
//	}
//
//	res, err := cmd.Shell(ctx, repoDir, nil, "make lint")
//	if err == nil && !res.Success() {
//	    // res.Output holds what the command printed
//	}
package cmd
