// Package hooks runs the actions configured for a git hook.
//
// A [Runner] handles one invocation of a concrete hook. It walks a fixed
// pipeline:
//
//  1. Gate: a disabled hook (or HOOKED_SKIP_HOOKS=1) succeeds without
//     running anything.
//  2. Precondition: hook specific checks. commit-msg requires the message
//     file argument and skips "fixup!" and "squash!" commits.
//  3. Resolve: [config.Config.HookToExecute] merges virtual hook actions
//     into the concrete hook.
//  4. Execute: actions run in order through the [Executor], surrounded by
//     plugin callbacks.
//  5. Aggregate: with fail-on-first-error the walk stops at the first
//     failure, otherwise every action runs.
//  6. Report: failures become a [HookFailedError] unless allow-failure is
//     set.
//
// # Actions
//
// An action is either a shell command or "::name", an extension looked up
// in the [Registry]. Commands run through "sh -c" in the repository root,
// wrapped with the configured container command in docker mode.
//
// # Placeholders
//
// Commands and shell conditions may reference:
//
//   - {staged-files}, {changed-files}: shell-quoted, space separated paths
//   - {branch}, {git-dir}, {path}: repository state
//   - {arg:NAME}: positional hook argument, e.g. {arg:file}
//   - {env:NAME}: environment variable
//   - {custom:KEY}: value from the custom settings
//
// Each accepts a fallback, e.g. {env:CI:-false}. Values are shell-quoted.
//
// # Conditions
//
// Conditions guard an action. "::name" refers to a registered condition,
// anything else is a shell command that holds when it exits 0. A false
// condition skips the action; skipped actions never fail a hook.
package hooks
