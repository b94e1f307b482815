//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfigInit_CreatesFile tests creating the default config.
//
// Scenario: User runs `hooked config init`
// Expected: hooked.toml is created in the repository root
func TestConfigInit_CreatesFile(t *testing.T) {
	repo := setupTestRepo(t, "")

	out, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	path := filepath.Join(repo, "hooked.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("hooked.toml not created: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q does not name the file", out)
	}

	if _, err := runCommand(t, "config", "init"); err == nil {
		t.Error("config init on existing file = nil, want error")
	}
}

// TestConfigShow_YAML tests printing the effective config as YAML.
func TestConfigShow_YAML(t *testing.T) {
	setupTestRepo(t, `
[config]
verbosity = "verbose"
`)

	out, err := runCommand(t, "config", "show", "--format", "yaml")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	var data map[string]any
	if err := yaml.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	settings, ok := data["config"].(map[string]any)
	if !ok || settings["verbosity"] != "verbose" {
		t.Errorf("config section = %v", data["config"])
	}
}

// TestConfigHooks_ListsVirtualActions tests that virtual hook actions are
// listed under their targets.
func TestConfigHooks_ListsVirtualActions(t *testing.T) {
	setupTestRepo(t, `
[post-change]
enabled = true

[[post-change.actions]]
label = "refresh deps"
action = "make deps"
`)

	out, err := runCommand(t, "config", "hooks")
	if err != nil {
		t.Fatalf("config hooks failed: %v", err)
	}
	if got := strings.Count(out, "refresh deps"); got != 3 {
		t.Errorf("action listed %d times, want 3\n%s", got, out)
	}
}
