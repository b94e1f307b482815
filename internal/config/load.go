package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// settingsKey is the top-level table holding global settings.
const settingsKey = "config"

// FindPath returns the config file to use for a repository root: the first
// existing entry of FileNames, or hooked.toml if none exists.
func FindPath(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, FileNames[0])
}

// Load reads the config file at path.
// Returns the default configuration if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(path), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg, err := fromRaw(path, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// decode parses TOML or YAML depending on the file extension.
func decode(path string, data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// fromRaw builds a Config from a decoded settings tree.
func fromRaw(path string, raw map[string]any) (*Config, error) {
	var settings Settings
	if v, ok := raw[settingsKey]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a table", settingsKey)
		}
		s, err := parseSettings(m)
		if err != nil {
			return nil, err
		}
		settings = s
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}

	cfg := New(path, true, settings)
	for name, v := range raw {
		if name == settingsKey {
			continue
		}
		hook, err := cfg.Hook(name)
		if err != nil {
			return nil, err
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a table", name)
		}
		if err := parseHook(hook, m); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return cfg, nil
}

// parseSettings extracts Settings from the [config] table.
func parseSettings(m map[string]any) (Settings, error) {
	var s Settings

	if v, ok := m["run"]; ok {
		run, ok := v.(map[string]any)
		if !ok {
			return s, errors.New("config.run: expected a table")
		}
		s.Run.Mode, _ = run["mode"].(string)
		s.Run.Exec, _ = run["exec"].(string)
		s.Run.Path, _ = run["path"].(string)
	}

	s.Verbosity, _ = m["verbosity"].(string)
	s.GitDirectory, _ = m["git-directory"].(string)

	for key, dst := range map[string]**bool{
		"ansi-colors":         &s.AnsiColors,
		"fail-on-first-error": &s.FailOnFirstError,
		"allow-failure":       &s.AllowFailure,
	} {
		v, ok := m[key]
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return s, fmt.Errorf("config.%s: expected a boolean, got %T", key, v)
		}
		*dst = Bool(b)
	}

	if v, ok := m["custom"]; ok {
		custom, ok := v.(map[string]any)
		if !ok {
			return s, errors.New("config.custom: expected a table")
		}
		s.Custom = custom
	}

	if v, ok := m["plugins"]; ok {
		entries, err := tableList(v)
		if err != nil {
			return s, fmt.Errorf("config.plugins: %w", err)
		}
		for _, e := range entries {
			p := Plugin{Options: map[string]any{}}
			p.Name, _ = e["plugin"].(string)
			if opts, ok := e["options"].(map[string]any); ok {
				p.Options = opts
			}
			s.Plugins = append(s.Plugins, p)
		}
	}

	return s, nil
}

// parseHook fills a hook from its table.
func parseHook(hook *HookConfig, m map[string]any) error {
	if v, ok := m["enabled"]; ok {
		enabled, ok := v.(bool)
		if !ok {
			return fmt.Errorf("enabled: expected a boolean, got %T", v)
		}
		hook.SetEnabled(enabled)
	}

	v, ok := m["actions"]
	if !ok {
		return nil
	}
	entries, err := tableList(v)
	if err != nil {
		return fmt.Errorf("actions: %w", err)
	}
	for i, e := range entries {
		a, err := parseAction(e)
		if err != nil {
			return fmt.Errorf("actions[%d]: %w", i, err)
		}
		hook.AddAction(a)
	}
	return nil
}

func parseAction(m map[string]any) (ActionConfig, error) {
	s, _ := m["action"].(string)
	if strings.TrimSpace(s) == "" {
		return ActionConfig{}, errors.New("missing action")
	}

	a := NewAction(s)
	a.Label, _ = m["label"].(string)
	a.AllowFailure, _ = m["allow-failure"].(bool)
	if opts, ok := m["options"].(map[string]any); ok {
		a.Options = opts
	}

	if v, ok := m["conditions"]; ok {
		entries, err := tableList(v)
		if err != nil {
			return ActionConfig{}, fmt.Errorf("conditions: %w", err)
		}
		for i, e := range entries {
			exec, _ := e["exec"].(string)
			if exec == "" {
				return ActionConfig{}, fmt.Errorf("conditions[%d]: missing exec", i)
			}
			args, _ := e["args"].(map[string]any)
			a.Conditions = append(a.Conditions, Condition{Exec: exec, Args: args})
		}
	}

	return a, nil
}

// tableList normalizes an array of tables. TOML decodes them as
// []map[string]any, YAML as []any.
func tableList(v any) ([]map[string]any, error) {
	switch list := v.(type) {
	case []map[string]any:
		return list, nil
	case []any:
		tables := make([]map[string]any, 0, len(list))
		for i, e := range list {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("[%d]: expected a table, got %T", i, e)
			}
			tables = append(tables, m)
		}
		return tables, nil
	default:
		return nil, fmt.Errorf("expected a list of tables, got %T", v)
	}
}
