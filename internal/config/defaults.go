package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/raphi011/hooked/internal/githook"
)

// FileNames are the config file names looked up in the repository root, in
// order of preference.
var FileNames = []string{"hooked.toml", "hooked.yml", "hooked.yaml"}

// defaultActions returns the actions used when no config file exists.
// A fresh map is built on every call so callers may modify the result.
func defaultActions() map[string][]ActionConfig {
	maxSize := NewAction("::file.max-size")
	maxSize.Options["max-size"] = "5M"

	rules := NewAction("::message.rules")
	rules.Options["subject-length"] = 50
	rules.Options["body-line-length"] = 72

	return map[string][]ActionConfig{
		githook.PreCommit: {maxSize},
		githook.CommitMsg: {rules},
		githook.PrePush:   {NewAction("::branch.block-fixup-push")},
	}
}

// Default returns the configuration used when no file exists.
func Default(path string) *Config {
	return New(path, false, Settings{})
}

const defaultConfig = `# hooked configuration
#
# Global settings
[config]
# verbosity = "normal"          # quiet, normal, verbose, debug
# ansi-colors = true
# fail-on-first-error = true    # stop at the first failing action
# allow-failure = false         # report failures but never block git

# Run actions inside a container:
# [config.run]
# mode = "docker"
# exec = "docker exec -w {path} app"
# path = "/app"

# Free-form values, available as {custom:KEY} in commands
# [config.custom]
# ticket-prefix = "ABC"

# Plugins run around every hook and action:
# [[config.plugins]]
# plugin = "timer"

[pre-commit]
enabled = true

[[pre-commit.actions]]
action = "::file.max-size"
[pre-commit.actions.options]
max-size = "5M"

# [[pre-commit.actions]]
# action = "go vet ./..."
# [[pre-commit.actions.conditions]]
# exec = "::file-staged.any"
# args = { files = ["*.go"] }

[commit-msg]
enabled = true

[[commit-msg.actions]]
action = "::message.rules"
[commit-msg.actions.options]
subject-length = 50
body-line-length = 72

[pre-push]
enabled = true

[[pre-push.actions]]
action = "::branch.block-fixup-push"

# Actions on post-change run after checkout, merge and rewrite:
# [post-change]
# [[post-change.actions]]
# action = "npm install"
# [[post-change.actions.conditions]]
# exec = "::file-changed.any"
# args = { files = ["package-lock.json"] }
`

// DefaultConfig returns the content written by "hooked config init".
func DefaultConfig() string {
	return defaultConfig
}

// Init writes the default config file into dir.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileNames[0])

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
