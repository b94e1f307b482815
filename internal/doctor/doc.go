// Package doctor diagnoses a repository's hooked setup and optionally
// repairs it.
//
// Two groups of checks run:
//
//   - [CategoryConfig]: actions, conditions and plugins referencing names
//     that are not registered, and enabled hooks without actions.
//
//   - [CategoryInstall]: enabled hooks (directly or through a virtual hook)
//     without an installed script, scripts not written by hooked, and
//     scripts that are not executable.
//
// # Usage
//
//	issues, err := doctor.Run(ctx, w, doctor.Options{
//		Config:   cfg,
//		Registry: reg,
//		HooksDir: dir,
//		Fix:      true,
//	})
//
// Each [Issue] carries a description and, when it can be repaired, the
// [FixAction] --fix applies.
package doctor
