package hooks

import "strings"

// PushRef is one line git pipes to pre-push:
// "<local ref> <local sha> <remote ref> <remote sha>".
type PushRef struct {
	LocalRef  string
	LocalSHA  string
	RemoteRef string
	RemoteSHA string
}

// IsDeletion reports whether the push deletes the remote ref.
func (p PushRef) IsDeletion() bool {
	return isZero(p.LocalSHA)
}

// IsNewBranch reports whether the remote ref does not exist yet.
func (p PushRef) IsNewBranch() bool {
	return isZero(p.RemoteSHA)
}

// Range returns the git log revisions selecting the pushed commits.
func (p PushRef) Range() []string {
	if p.IsNewBranch() {
		return []string{p.LocalSHA, "--not", "--remotes"}
	}
	return []string{p.RemoteSHA + ".." + p.LocalSHA}
}

// ParsePushRefs parses pre-push stdin lines. Malformed lines are ignored.
func ParsePushRefs(lines []string) []PushRef {
	var refs []PushRef
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) != 4 {
			continue
		}
		refs = append(refs, PushRef{LocalRef: f[0], LocalSHA: f[1], RemoteRef: f[2], RemoteSHA: f[3]})
	}
	return refs
}

func isZero(sha string) bool {
	return sha != "" && strings.Trim(sha, "0") == ""
}
