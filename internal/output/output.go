// Package output provides the console used by hook runs.
//
// A Console is the I/O collaborator of the hook runner: it writes progress
// lines, hands out the positional arguments git passed to the hook and the
// lines git piped to stdin. Diagnostics go through the log package instead.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Console writes hook output and provides hook input.
type Console struct {
	w     io.Writer
	args  map[string]string
	stdin []string
}

// New creates a Console writing to w. Colors are downsampled to what w
// supports; with colors=false all ANSI sequences are stripped.
func New(w io.Writer, colors bool) *Console {
	cw := colorprofile.NewWriter(w, os.Environ())
	if !colors {
		cw.Profile = colorprofile.NoTTY
	}
	return &Console{w: cw, args: map[string]string{}}
}

// WithArguments returns a copy of the console serving the given hook arguments.
func (c *Console) WithArguments(args map[string]string) *Console {
	cp := *c
	cp.args = make(map[string]string, len(args))
	for k, v := range args {
		cp.args[k] = v
	}
	return &cp
}

// WithInput returns a copy of the console serving the given stdin lines.
func (c *Console) WithInput(lines []string) *Console {
	cp := *c
	cp.stdin = append([]string(nil), lines...)
	return &cp
}

// WithConsole attaches a Console to the context.
func WithConsole(ctx context.Context, c *Console) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the Console from context.
// Returns a Console writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Console {
	if c, ok := ctx.Value(ctxKey{}).(*Console); ok {
		return c
	}
	return New(os.Stdout, true)
}

// Write writes each line followed by a newline.
func (c *Console) Write(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.w, line)
	}
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Argument returns a positional hook argument by name, "" if absent.
func (c *Console) Argument(name string) string {
	return c.args[name]
}

// StandardInput returns the lines git piped to the hook.
func (c *Console) StandardInput() []string {
	return c.stdin
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Indent prefixes every non-empty line of s with prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
