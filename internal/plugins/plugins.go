// Package plugins provides the plugins shipped with hooked.
//
// Plugins are declared in the config and called at fixed points of a hook
// run:
//
//	[[config.plugins]]
//	plugin = "timer"
//
//	[[config.plugins]]
//	plugin = "env"
//	options = { prefix = "APP_" }
//
//	[[config.plugins]]
//	plugin = "history"
//	options = { limit = 100 }
package plugins

import "github.com/raphi011/hooked/internal/hooks"

// Register adds all built-in plugins to reg.
func Register(reg *hooks.Registry) {
	reg.RegisterPlugin("timer", NewTimer)
	reg.RegisterPlugin("env", NewEnv)
	reg.RegisterPlugin("history", NewHistory)
}
