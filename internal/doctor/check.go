package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/install"
)

// checkConfig finds actions, conditions and plugins that don't resolve.
func checkConfig(cfg *config.Config, reg *hooks.Registry) ([]Issue, int) {
	var issues []Issue
	var actions int

	for _, p := range cfg.Plugins() {
		if _, err := reg.Plugin(p.Name, p.Options); err != nil {
			issues = append(issues, Issue{
				Key:         "plugin " + p.Name,
				Description: err.Error(),
				Hint:        suggest(p.Name, reg.PluginNames()),
			})
		}
	}

	for _, name := range cfg.HookNames() {
		hook, err := cfg.Hook(name)
		if err != nil {
			continue
		}
		if hook.Enabled && len(hook.Actions) == 0 && githook.IsConcrete(name) && !hasVirtualActions(cfg, name) {
			issues = append(issues, Issue{
				Key:         name,
				Description: "enabled without actions",
			})
		}

		for _, a := range hook.Actions {
			actions++
			key := name + "/" + a.Name()
			if a.Action.Kind == config.KindExtension {
				if _, ok := reg.Extension(a.Action.Extension); !ok {
					issues = append(issues, Issue{
						Key:         key,
						Description: fmt.Sprintf("unknown extension %q", a.Action.String()),
						Hint:        suggest(a.Action.Extension, reg.ExtensionNames()),
					})
				}
			}
			for _, c := range a.Conditions {
				if !c.IsExtension() {
					continue
				}
				if _, ok := reg.Condition(c.ExtensionName()); !ok {
					issues = append(issues, Issue{
						Key:         key,
						Description: fmt.Sprintf("unknown condition %q", c.Exec),
						Hint:        suggest(c.ExtensionName(), reg.ConditionNames()),
					})
				}
			}
		}
	}

	for i := range issues {
		issues[i].Category = CategoryConfig
	}
	return issues, actions
}

// hasVirtualActions reports whether a virtual hook adds actions to name.
func hasVirtualActions(cfg *config.Config, name string) bool {
	for _, v := range githook.VirtualHooksFor(name) {
		if h, err := cfg.Hook(v); err == nil && len(h.Actions) > 0 {
			return true
		}
	}
	return false
}

// expectedHooks returns the concrete hooks that should have a script:
// enabled ones and targets of enabled virtual hooks.
func expectedHooks(cfg *config.Config) []string {
	var names []string
	for _, name := range githook.Concrete() {
		enabled := cfg.IsHookEnabled(name)
		for _, v := range githook.VirtualHooksFor(name) {
			enabled = enabled || cfg.IsHookEnabled(v)
		}
		if enabled {
			names = append(names, name)
		}
	}
	return names
}

// checkInstall inspects the scripts of the expected hooks.
func checkInstall(cfg *config.Config, hooksDir string) ([]Issue, int) {
	var issues []Issue
	expected := expectedHooks(cfg)

	for _, name := range expected {
		path := filepath.Join(hooksDir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			issues = append(issues, Issue{
				Key:         name,
				Description: "hook is enabled but not installed",
				FixAction:   FixInstall,
			})
			continue
		}
		if err != nil {
			issues = append(issues, Issue{Key: name, Description: err.Error()})
			continue
		}

		shim, err := install.IsShim(path)
		if err != nil {
			issues = append(issues, Issue{Key: name, Description: err.Error()})
			continue
		}
		if !shim {
			issues = append(issues, Issue{
				Key:         name,
				Description: "existing script is not managed by hooked",
				Hint:        "run 'hooked install --force " + name + "' to replace it",
			})
			continue
		}
		if info.Mode().Perm()&0o111 == 0 {
			issues = append(issues, Issue{
				Key:         name,
				Description: "script is not executable",
				FixAction:   FixChmod,
			})
		}
	}

	for i := range issues {
		issues[i].Category = CategoryInstall
	}
	return issues, len(expected)
}

// suggest returns a "did you mean" hint for the closest candidates.
func suggest(name string, candidates []string) string {
	var matches []string
	for _, m := range fuzzy.Find(name, candidates) {
		matches = append(matches, m.Str)
		if len(matches) == 3 {
			break
		}
	}
	if len(matches) == 0 {
		return ""
	}
	return "did you mean " + strings.Join(matches, ", ") + "?"
}
