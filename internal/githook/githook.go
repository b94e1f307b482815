package githook

import "slices"

// Concrete hook names invoked by git.
const (
	CommitMsg        = "commit-msg"
	PrePush          = "pre-push"
	PreCommit        = "pre-commit"
	PrepareCommitMsg = "prepare-commit-msg"
	PostCommit       = "post-commit"
	PostMerge        = "post-merge"
	PostCheckout     = "post-checkout"
	PostRewrite      = "post-rewrite"
)

// Virtual hook names.
const (
	PostChange = "post-change"
)

// concrete lists hooks in the order they are shown and installed.
var concrete = []string{
	CommitMsg,
	PrePush,
	PreCommit,
	PrepareCommitMsg,
	PostCommit,
	PostMerge,
	PostCheckout,
	PostRewrite,
}

// virtualHook maps a virtual hook to the concrete hooks that receive its actions.
type virtualHook struct {
	name    string
	targets []string
}

// virtual is ordered: resolution appends virtual actions in this order.
var virtual = []virtualHook{
	{name: PostChange, targets: []string{PostCheckout, PostMerge, PostRewrite}},
}

// arguments holds the positional arguments git passes to each hook.
var arguments = map[string][]string{
	CommitMsg:        {"file"},
	PrePush:          {"target", "url"},
	PrepareCommitMsg: {"file", "mode", "hash"},
	PostMerge:        {"squash"},
	PostCheckout:     {"previous-head", "new-head", "mode"},
	PostRewrite:      {"git-command"},
}

// Concrete returns the names of all hooks git can invoke.
func Concrete() []string {
	return slices.Clone(concrete)
}

// Virtual returns the names of all virtual hooks.
func Virtual() []string {
	names := make([]string, len(virtual))
	for i, v := range virtual {
		names[i] = v.name
	}
	return names
}

// All returns concrete hooks followed by virtual hooks.
func All() []string {
	return append(Concrete(), Virtual()...)
}

// IsConcrete reports whether name is a hook git invokes.
func IsConcrete(name string) bool {
	return slices.Contains(concrete, name)
}

// IsVirtual reports whether name is a virtual hook.
func IsVirtual(name string) bool {
	return slices.ContainsFunc(virtual, func(v virtualHook) bool { return v.name == name })
}

// IsValid reports whether name is a concrete or virtual hook.
func IsValid(name string) bool {
	return IsConcrete(name) || IsVirtual(name)
}

// Validate returns an *InvalidHookError if name is not a known hook.
func Validate(name string) error {
	if IsValid(name) {
		return nil
	}
	return newInvalidHookError(name)
}

// TargetsOf returns the concrete hooks a virtual hook feeds into.
// Returns nil for names that are not virtual.
func TargetsOf(name string) []string {
	for _, v := range virtual {
		if v.name == name {
			return slices.Clone(v.targets)
		}
	}
	return nil
}

// VirtualHooksFor returns the virtual hooks whose actions are merged into
// the given concrete hook, in table order.
func VirtualHooksFor(name string) []string {
	var names []string
	for _, v := range virtual {
		if slices.Contains(v.targets, name) {
			names = append(names, v.name)
		}
	}
	return names
}

// Arguments returns the names of the positional arguments git passes to a hook.
func Arguments(name string) []string {
	return slices.Clone(arguments[name])
}
