// Package builtin provides the extensions and conditions shipped with hooked.
//
// Extensions are referenced in actions as "::name", conditions in an
// action's conditions list as "::name".
package builtin

import "github.com/raphi011/hooked/internal/hooks"

// Register adds all built-in extensions and conditions to reg.
func Register(reg *hooks.Registry) {
	reg.RegisterExtension("message.rules", MessageRules)
	reg.RegisterExtension("message.regex", MessageRegex)
	reg.RegisterExtension("branch.naming", BranchNaming)
	reg.RegisterExtension("branch.block-fixup-push", BlockFixupPush)
	reg.RegisterExtension("file.max-size", MaxFileSize)
	reg.RegisterExtension("debug", Debug)
	reg.RegisterExtension("debug.fail", DebugFail)

	reg.RegisterCondition("on-branch", OnBranch)
	reg.RegisterCondition("file-staged.any", FileStagedAny)
	reg.RegisterCondition("file-staged.all", FileStagedAll)
	reg.RegisterCondition("file-changed.any", FileChangedAny)
	reg.RegisterCondition("file-changed.all", FileChangedAll)
	reg.RegisterCondition("env.set", EnvSet)
}
