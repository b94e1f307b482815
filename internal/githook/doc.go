// Package githook knows which git hooks exist.
//
// Concrete hooks are the names git itself invokes (commit-msg, pre-push, ...).
// Virtual hooks are synthetic names whose actions are merged into one or more
// concrete hooks when those run:
//
//	post-change -> post-checkout, post-merge, post-rewrite
//
// The tables are fixed at compile time and never modified.
package githook
