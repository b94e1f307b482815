package builtin

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/raphi011/hooked/internal/git"
	"github.com/raphi011/hooked/internal/hooks"
)

// Default limits for MessageRules.
const (
	DefaultSubjectLength  = 50
	DefaultBodyLineLength = 72
)

// MessageRules checks the commit message against the usual conventions.
//
// Options:
//   - subject-length: maximum subject length, 0 disables (default 50)
//   - body-line-length: maximum body line length, 0 disables (default 72)
//   - capitalize-subject: subject starts with an upper case letter (default true)
//   - no-period: subject does not end with a period (default true)
func MessageRules(ctx context.Context, hc *hooks.Context, opts hooks.Options) error {
	msg, err := hc.CommitMessage(ctx)
	if err != nil {
		return err
	}
	return errors.Join(checkMessage(msg, opts)...)
}

func checkMessage(msg git.Message, opts hooks.Options) []error {
	if msg.IsEmpty() {
		return []error{errors.New("commit message is empty")}
	}

	var problems []error
	subject := msg.Subject()

	if limit := opts.Int("subject-length", DefaultSubjectLength); limit > 0 {
		if n := utf8.RuneCountInString(subject); n > limit {
			problems = append(problems, fmt.Errorf("subject has %d characters, limit is %d", n, limit))
		}
	}
	if opts.Bool("capitalize-subject", true) {
		if r, _ := utf8.DecodeRuneInString(subject); unicode.IsLetter(r) && !unicode.IsUpper(r) {
			problems = append(problems, errors.New("subject must start with a capital letter"))
		}
	}
	if opts.Bool("no-period", true) && strings.HasSuffix(subject, ".") {
		problems = append(problems, errors.New("subject must not end with a period"))
	}
	if len(msg.Lines) > 1 && msg.Lines[1] != "" {
		problems = append(problems, errors.New("subject and body must be separated by a blank line"))
	}
	if limit := opts.Int("body-line-length", DefaultBodyLineLength); limit > 0 {
		for i, line := range msg.Body() {
			if n := utf8.RuneCountInString(line); n > limit {
				problems = append(problems, fmt.Errorf("body line %d has %d characters, limit is %d", i+1, n, limit))
			}
		}
	}
	return problems
}

// MessageRegex requires the commit message to match a regular expression.
//
// Options:
//   - regex: the pattern, required
//   - error: message shown when the pattern does not match
func MessageRegex(ctx context.Context, hc *hooks.Context, opts hooks.Options) error {
	re, err := compileOption(opts, "regex")
	if err != nil {
		return err
	}
	msg, err := hc.CommitMessage(ctx)
	if err != nil {
		return err
	}
	if !re.MatchString(msg.String()) {
		return errors.New(opts.String("error", fmt.Sprintf("commit message does not match %q", re.String())))
	}
	return nil
}

func compileOption(opts hooks.Options, key string) (*regexp.Regexp, error) {
	pattern := opts.String(key, "")
	if pattern == "" {
		return nil, fmt.Errorf("option %q is required", key)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return re, nil
}
