// Package git provides the repository accessor used by hook runs.
//
// All operations call the git CLI through the cmd package rather than using
// a Go git library, so hooks see exactly what the user's git sees (config
// includes, comment character, worktrees).
//
// # Queries
//
//   - [Repository.CurrentBranch], [Repository.GitDir], [Repository.HooksDir]
//   - [Repository.StagedFiles], [Repository.ChangedFiles]
//   - [Repository.ConfigValue], [Repository.CommentChar]
//   - [Repository.CommitSubjects]
//
// # Commit messages
//
// [Repository.CommitMessage] reads a commit message file and strips comment
// lines using the repository's comment character. [Message.IsFixup] detects
// "fixup!" and "squash!" commits.
package git
