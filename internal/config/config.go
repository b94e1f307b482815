package config

import (
	"path/filepath"
	"slices"

	"github.com/raphi011/hooked/internal/githook"
)

// Run modes
const (
	RunModeLocal  = "local"
	RunModeDocker = "docker"
)

// Verbosity levels
const (
	VerbosityQuiet   = "quiet"
	VerbosityNormal  = "normal"
	VerbosityVerbose = "verbose"
	VerbosityDebug   = "debug"
)

// RunConfig describes where actions are executed.
type RunConfig struct {
	Mode string // "local", "docker" or another container runtime
	Exec string // container command, e.g. "docker exec app"
	Path string // path of the repository inside the container
}

// IsContainerized reports whether commands are wrapped with Exec.
func (r RunConfig) IsContainerized() bool {
	return r.Mode != "" && r.Mode != RunModeLocal && r.Exec != ""
}

func (r RunConfig) isZero() bool {
	return r == RunConfig{}
}

// Plugin is a plugin declaration.
type Plugin struct {
	Name    string
	Options map[string]any
}

// Settings are the global options from the [config] table.
// Nil pointers and empty strings mean "not set".
type Settings struct {
	Run              RunConfig
	Verbosity        string
	AnsiColors       *bool
	FailOnFirstError *bool
	AllowFailure     *bool
	GitDirectory     string
	Custom           map[string]any
	Plugins          []Plugin
}

func (s Settings) isZero() bool {
	return s.Run.isZero() &&
		s.Verbosity == "" &&
		s.AnsiColors == nil &&
		s.FailOnFirstError == nil &&
		s.AllowFailure == nil &&
		s.GitDirectory == "" &&
		len(s.Custom) == 0 &&
		len(s.Plugins) == 0
}

// Config is the configuration of one hooked invocation.
type Config struct {
	path           string
	loadedFromFile bool
	settings       Settings
	hooks          map[string]*HookConfig
}

// New creates a configuration. Every known hook gets an entry, disabled and
// without actions. When loadedFromFile is false the default actions are
// installed for pre-commit, commit-msg and pre-push.
func New(path string, loadedFromFile bool, settings Settings) *Config {
	c := &Config{
		path:           path,
		loadedFromFile: loadedFromFile,
		settings:       settings,
		hooks:          make(map[string]*HookConfig),
	}
	for _, name := range githook.All() {
		c.hooks[name] = &HookConfig{Name: name}
	}
	if !loadedFromFile {
		for name, actions := range defaultActions() {
			c.hooks[name].Actions = actions
		}
	}
	return c
}

// Path returns the location the configuration was (or would be) loaded from.
func (c *Config) Path() string {
	return c.path
}

// IsLoadedFromFile reports whether the configuration came from a file.
func (c *Config) IsLoadedFromFile() bool {
	return c.loadedFromFile
}

// Run returns the execution environment settings.
func (c *Config) Run() RunConfig {
	run := c.settings.Run
	if run.Mode == "" {
		run.Mode = RunModeLocal
	}
	return run
}

// Verbosity returns the configured verbosity, "normal" by default.
func (c *Config) Verbosity() string {
	if c.settings.Verbosity == "" {
		return VerbosityNormal
	}
	return c.settings.Verbosity
}

// UseAnsiColors reports whether output may be colored. Defaults to true.
func (c *Config) UseAnsiColors() bool {
	return boolOr(c.settings.AnsiColors, true)
}

// FailOnFirstError reports whether a hook stops at the first failing action.
// Defaults to true.
func (c *Config) FailOnFirstError() bool {
	return boolOr(c.settings.FailOnFirstError, true)
}

// IsFailureAllowed reports whether failing hooks still exit successfully.
// Defaults to false.
func (c *Config) IsFailureAllowed() bool {
	return boolOr(c.settings.AllowFailure, false)
}

// CustomSettings returns a copy of the free-form custom settings.
func (c *Config) CustomSettings() map[string]any {
	custom := cloneMap(c.settings.Custom)
	if custom == nil {
		return map[string]any{}
	}
	return custom
}

// Plugins returns the declared plugins in order. Never nil.
func (c *Config) Plugins() []Plugin {
	plugins := make([]Plugin, 0, len(c.settings.Plugins))
	for _, p := range c.settings.Plugins {
		opts := cloneMap(p.Options)
		if opts == nil {
			opts = map[string]any{}
		}
		plugins = append(plugins, Plugin{Name: p.Name, Options: opts})
	}
	return plugins
}

// GitDirectory returns the repository's .git directory. Relative settings are
// resolved against the directory holding the config file.
func (c *Config) GitDirectory() string {
	base, err := filepath.Abs(filepath.Dir(c.path))
	if err != nil {
		base = filepath.Dir(c.path)
	}
	gitDir := c.settings.GitDirectory
	if gitDir == "" {
		return filepath.Join(base, ".git")
	}
	if filepath.IsAbs(gitDir) {
		return gitDir
	}
	return filepath.Join(base, gitDir)
}

// Hook returns the stored configuration of a hook. The returned value may be
// modified for programmatic overrides.
func (c *Config) Hook(name string) (*HookConfig, error) {
	if err := githook.Validate(name); err != nil {
		return nil, err
	}
	h, ok := c.hooks[name]
	if !ok {
		h = &HookConfig{Name: name}
		c.hooks[name] = h
	}
	return h, nil
}

// IsHookEnabled reports whether the stored hook is enabled.
// Unknown hooks are never enabled.
func (c *Config) IsHookEnabled(name string) bool {
	h, err := c.Hook(name)
	if err != nil {
		return false
	}
	return h.Enabled
}

// HookNames returns all configured hook names in table order.
func (c *Config) HookNames() []string {
	names := githook.All()
	return slices.DeleteFunc(names, func(n string) bool {
		_, ok := c.hooks[n]
		return !ok
	})
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// Bool returns a pointer to b, for building Settings literals.
func Bool(b bool) *bool {
	return &b
}
