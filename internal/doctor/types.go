package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryConfig represents references the registry cannot resolve.
	CategoryConfig IssueCategory = "config"
	// CategoryInstall represents problems with the scripts in the hooks dir.
	CategoryInstall IssueCategory = "install"
)

// FixAction names the repair --fix applies. Empty means manual.
type FixAction string

const (
	FixNone    FixAction = ""
	FixInstall FixAction = "install"
	FixChmod   FixAction = "chmod"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // hook, or hook/action
	Description string        // human-readable description
	Hint        string        // what to do about it manually
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
}

// Fixable reports whether --fix can repair the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != FixNone
}

// Stats tracks counts by category.
type Stats struct {
	Actions       int // configured actions checked
	ActionIssues  int // unresolved actions, conditions and plugins
	Hooks         int // hooks expected to be installed
	InstallIssues int // missing, foreign or broken scripts
}
