package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hooked/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("RunContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	// Verify command runs in specified directory
	err := RunContext(logCtx(), "/tmp", "pwd")
	if err != nil {
		t.Errorf("RunContext with dir = %v, want nil", err)
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_Failure(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("OutputContext(exit 1) = nil, want error")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("OutputContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}

func TestShell_Success(t *testing.T) {
	t.Parallel()
	res, err := Shell(logCtx(), "", nil, "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Shell = %v, want nil", err)
	}
	if !res.Success() {
		t.Errorf("Success() = false, exit code %d", res.ExitCode)
	}
	if got := string(res.Output); got != "out\nerr\n" {
		t.Errorf("Output = %q, want %q", got, "out\nerr\n")
	}
}

func TestShell_ExitCode(t *testing.T) {
	t.Parallel()
	res, err := Shell(logCtx(), "", nil, "echo broken; exit 3")
	if err != nil {
		t.Fatalf("Shell = %v, want nil for non-zero exit", err)
	}
	if res.Success() {
		t.Error("Success() = true, want false")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if got := string(res.Output); got != "broken\n" {
		t.Errorf("Output = %q, want %q", got, "broken\n")
	}
}

func TestShell_Env(t *testing.T) {
	t.Parallel()
	res, err := Shell(logCtx(), "", []string{"HOOKED_TEST_VALUE=42"}, "printf %s \"$HOOKED_TEST_VALUE\"")
	if err != nil {
		t.Fatalf("Shell = %v, want nil", err)
	}
	if got := string(res.Output); got != "42" {
		t.Errorf("Output = %q, want %q", got, "42")
	}
}

func TestShell_Dir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	res, err := Shell(logCtx(), dir, nil, "pwd -P")
	if err != nil {
		t.Fatalf("Shell = %v, want nil", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if got := strings.TrimSpace(string(res.Output)); got != want {
		t.Errorf("pwd = %q, want %q", got, want)
	}
}

func TestShell_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := Shell(ctx, "", nil, "sleep 10")
	if err != context.Canceled {
		t.Errorf("Shell error = %v, want context.Canceled", err)
	}
}

func TestCommandLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "", "echo", "hello"); err != nil {
		t.Fatalf("RunContext = %v", err)
	}
	if !strings.Contains(buf.String(), "$ echo hello") {
		t.Errorf("verbose log = %q, want to contain %q", buf.String(), "$ echo hello")
	}
}
