// Package config holds the hooked configuration model and its loader.
//
// Configuration is read from hooked.toml (or hooked.yml / hooked.yaml) in the
// repository root. When no file exists a default in-memory configuration is
// used and [Config.IsLoadedFromFile] reports false.
//
// # Configuration Sources (highest priority first)
//
//   - --config flag / HOOKED_CONFIG env var: explicit config file path
//   - hooked.toml, hooked.yml, hooked.yaml in the repository root
//   - Default values
//
// # File Layout
//
// The [config] table holds global settings; every other top-level table is a
// hook:
//
//	[config]
//	verbosity = "normal"          # quiet, normal, verbose, debug
//	ansi-colors = true
//	fail-on-first-error = true
//	allow-failure = false
//
//	[config.run]
//	mode = "docker"               # local (default), docker, ...
//	exec = "docker exec app"
//	path = "/app"
//
//	[commit-msg]
//	enabled = true
//
//	[[commit-msg.actions]]
//	action = "::message.rules"
//	[commit-msg.actions.options]
//	subject-length = 50
//
//	[[post-change.actions]]
//	action = "npm install"
//	[[post-change.actions.conditions]]
//	exec = "::file-changed.any"
//	args = { files = ["package-lock.json"] }
//
// Actions starting with "::" name an in-process extension, everything else is
// run as a shell command.
//
// # Virtual Hooks
//
// Actions configured on a virtual hook such as post-change are appended to
// every concrete hook it targets when that hook runs. [Config.HookToExecute]
// builds that merged view without touching the stored configuration.
package config
