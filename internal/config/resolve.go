package config

import "github.com/raphi011/hooked/internal/githook"

// HookToExecute returns the effective configuration of a hook for one run.
//
// The result starts as a copy of the stored hook and gets the actions of
// every virtual hook targeting it appended, in virtual hook table order.
// Virtual hooks contribute their actions whether they are enabled or not;
// Enabled always mirrors the stored hook. The stored configuration is never
// modified and every action in the result is an independent copy.
func (c *Config) HookToExecute(name string) (HookConfig, error) {
	stored, err := c.Hook(name)
	if err != nil {
		return HookConfig{}, err
	}

	resolved := stored.Clone()
	for _, virtualName := range githook.VirtualHooksFor(name) {
		virtual, err := c.Hook(virtualName)
		if err != nil {
			return HookConfig{}, err
		}
		for _, a := range virtual.Actions {
			resolved.AddAction(a.Clone())
		}
	}

	return resolved, nil
}
