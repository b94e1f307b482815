package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raphi011/hooked/internal/install"
	"github.com/raphi011/hooked/internal/output"
)

// fixAllIssues applies the fixes of all fixable issues and returns the ones
// left over.
func fixAllIssues(w io.Writer, issues []Issue, opts Options) []Issue {
	var remaining []Issue
	var fixed, failed int

	for _, issue := range issues {
		var err error
		switch issue.FixAction {
		case FixInstall:
			_, err = install.Install(opts.HooksDir, []string{issue.Key}, install.Options{Binary: opts.Binary})
		case FixChmod:
			err = os.Chmod(filepath.Join(opts.HooksDir, issue.Key), 0o755)
		default:
			remaining = append(remaining, issue)
			continue
		}

		if err != nil {
			fmt.Fprintf(w, "  %s %s: %v\n", output.Failed(output.SymbolFailed), issue.Key, err)
			remaining = append(remaining, issue)
			failed++
			continue
		}
		fmt.Fprintf(w, "  %s %s: %s\n", output.Passed(output.SymbolPassed), issue.Key, fixDescription(issue.FixAction))
		fixed++
	}

	fmt.Fprintf(w, "\nFixed %d issues", fixed)
	if failed > 0 {
		fmt.Fprintf(w, ", %d failed", failed)
	}
	fmt.Fprintln(w)
	return remaining
}

func fixDescription(a FixAction) string {
	switch a {
	case FixInstall:
		return "installed"
	case FixChmod:
		return "made executable"
	default:
		return string(a)
	}
}
