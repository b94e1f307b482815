//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit and changes into it.
// Returns the absolute path to the repo (with symlinks resolved).
func setupTestRepo(t *testing.T, config string) string {
	t.Helper()

	repoPath := resolvePath(t, t.TempDir())

	runGit(t, repoPath, "init", "-b", "main")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	writeTestFile(t, filepath.Join(repoPath, "README.md"), "# test\n")
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	if config != "" {
		writeTestFile(t, filepath.Join(repoPath, "hooked.toml"), config)
	}

	t.Chdir(repoPath)
	return repoPath
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// runCommand executes hooked with args and returns stdout and the error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose, quiet, noColor, configPath = false, false, true, ""
	t.Cleanup(func() { verbose, quiet, noColor, configPath = false, false, false, "" })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetContext(context.Background())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}
