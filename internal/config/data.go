package config

// Data returns the configuration as a plain tree suitable for encoding.
//
// Every hook is present. The "config" section is only included when at
// least one setting was given, and "config.plugins" only when plugins are
// declared.
func (c *Config) Data() map[string]any {
	data := make(map[string]any)

	if settings := c.settingsData(); len(settings) > 0 {
		data[settingsKey] = settings
	}
	for _, name := range c.HookNames() {
		data[name] = hookData(c.hooks[name])
	}

	return data
}

func (c *Config) settingsData() map[string]any {
	s := c.settings
	if s.isZero() {
		return nil
	}

	m := make(map[string]any)
	if !s.Run.isZero() {
		run := c.Run()
		m["run"] = map[string]any{
			"mode": run.Mode,
			"exec": run.Exec,
			"path": run.Path,
		}
	}
	if s.Verbosity != "" {
		m["verbosity"] = s.Verbosity
	}
	if s.AnsiColors != nil {
		m["ansi-colors"] = *s.AnsiColors
	}
	if s.FailOnFirstError != nil {
		m["fail-on-first-error"] = *s.FailOnFirstError
	}
	if s.AllowFailure != nil {
		m["allow-failure"] = *s.AllowFailure
	}
	if s.GitDirectory != "" {
		m["git-directory"] = s.GitDirectory
	}
	if len(s.Custom) > 0 {
		m["custom"] = c.CustomSettings()
	}
	if len(s.Plugins) > 0 {
		plugins := make([]map[string]any, 0, len(s.Plugins))
		for _, p := range c.Plugins() {
			plugins = append(plugins, map[string]any{
				"plugin":  p.Name,
				"options": p.Options,
			})
		}
		m["plugins"] = plugins
	}
	return m
}

func hookData(h *HookConfig) map[string]any {
	actions := make([]map[string]any, 0, len(h.Actions))
	for _, a := range h.Actions {
		actions = append(actions, actionData(a))
	}
	return map[string]any{
		"enabled": h.Enabled,
		"actions": actions,
	}
}

func actionData(a ActionConfig) map[string]any {
	m := map[string]any{"action": a.Action.String()}
	if a.Label != "" {
		m["label"] = a.Label
	}
	if a.AllowFailure {
		m["allow-failure"] = true
	}
	if len(a.Options) > 0 {
		m["options"] = cloneMap(a.Options)
	}
	if len(a.Conditions) > 0 {
		conditions := make([]map[string]any, 0, len(a.Conditions))
		for _, cond := range a.Conditions {
			cm := map[string]any{"exec": cond.Exec}
			if len(cond.Args) > 0 {
				cm["args"] = cloneMap(cond.Args)
			}
			conditions = append(conditions, cm)
		}
		m["conditions"] = conditions
	}
	return m
}
