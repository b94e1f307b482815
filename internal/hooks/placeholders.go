package hooks

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// quoteAll shell-quotes each value and joins them with spaces.
func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = shellQuote(v)
	}
	return strings.Join(quoted, " ")
}

// placeholderRegex matches {name}, {name:key} and both forms with a
// ":-default" suffix. Keys start with a letter or underscore so that
// {branch:-main} parses as a default, not as a key.
var placeholderRegex = regexp.MustCompile(`\{([a-z][a-z-]*)(?::([A-Za-z_][A-Za-z0-9_.\-]*))?(?::-([^}]*))?\}`)

// Substitute replaces placeholders in command with shell-quoted values.
// Unknown placeholders are left untouched. Repository state is only
// queried for placeholders that occur in command.
func (c *Context) Substitute(ctx context.Context, command string) (string, error) {
	var firstErr error
	result := placeholderRegex.ReplaceAllStringFunc(command, func(match string) string {
		if firstErr != nil {
			return match
		}
		m := placeholderRegex.FindStringSubmatch(match)
		name, key, def := m[1], m[2], m[3]
		hasDefault := strings.Contains(match, ":-")

		value, known, err := c.placeholder(ctx, name, key)
		if err != nil {
			firstErr = fmt.Errorf("placeholder %s: %w", match, err)
			return match
		}
		if !known {
			return match
		}
		if value == "" && hasDefault {
			return shellQuote(def)
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// placeholder returns the quoted value of a placeholder. known is false for
// names that are not placeholders. An empty value means "unset" so that the
// default applies.
func (c *Context) placeholder(ctx context.Context, name, key string) (value string, known bool, err error) {
	quoteNonEmpty := func(s string) string {
		if s == "" {
			return ""
		}
		return shellQuote(s)
	}

	switch name {
	case "staged-files":
		if key != "" {
			return "", false, nil
		}
		files, err := c.Repo.StagedFiles(ctx)
		if err != nil {
			return "", true, err
		}
		return quoteAll(files), true, nil
	case "changed-files":
		if key != "" {
			return "", false, nil
		}
		files, err := c.ChangedFiles(ctx)
		if err != nil {
			return "", true, err
		}
		return quoteAll(files), true, nil
	case "branch":
		branch, err := c.Repo.CurrentBranch(ctx)
		if err != nil {
			return "", true, err
		}
		return quoteNonEmpty(branch), true, nil
	case "git-dir":
		dir, err := c.Repo.GitDir(ctx)
		if err != nil {
			return "", true, err
		}
		return quoteNonEmpty(dir), true, nil
	case "path":
		return quoteNonEmpty(c.Repo.Dir()), true, nil
	case "arg":
		if key == "" {
			return "", false, nil
		}
		return quoteNonEmpty(c.IO.Argument(key)), true, nil
	case "env":
		if key == "" {
			return "", false, nil
		}
		v, _ := c.Getenv(key)
		return quoteNonEmpty(v), true, nil
	case "custom":
		if key == "" {
			return "", false, nil
		}
		v, ok := c.Config.CustomSettings()[key]
		if !ok || v == nil {
			return "", true, nil
		}
		return quoteNonEmpty(fmt.Sprint(v)), true, nil
	default:
		return "", false, nil
	}
}
