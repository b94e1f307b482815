package config

import (
	"maps"
	"strings"
)

// ExtensionPrefix marks an action or condition as an in-process extension.
const ExtensionPrefix = "::"

// ActionKind distinguishes shell commands from in-process extensions.
type ActionKind int

const (
	KindCommand ActionKind = iota
	KindExtension
)

func (k ActionKind) String() string {
	if k == KindExtension {
		return "extension"
	}
	return "command"
}

// Action is either a shell command or the identifier of a registered extension.
type Action struct {
	Kind      ActionKind
	Command   string // set for KindCommand
	Extension string // set for KindExtension, without the "::" prefix
}

// ParseAction classifies a configured action string.
// "::message.rules" becomes an extension, anything else a command.
func ParseAction(s string) Action {
	s = strings.TrimSpace(s)
	if id, ok := strings.CutPrefix(s, ExtensionPrefix); ok {
		return Action{Kind: KindExtension, Extension: strings.TrimSpace(id)}
	}
	return Action{Kind: KindCommand, Command: s}
}

// String returns the action as it is written in the config file.
func (a Action) String() string {
	if a.Kind == KindExtension {
		return ExtensionPrefix + a.Extension
	}
	return a.Command
}

// Condition guards an action. Exec is either "::name" for a registered
// condition or a shell command that must exit 0.
type Condition struct {
	Exec string
	Args map[string]any
}

// IsExtension reports whether the condition names a registered condition.
func (c Condition) IsExtension() bool {
	return strings.HasPrefix(c.Exec, ExtensionPrefix)
}

// ExtensionName returns Exec without the "::" prefix.
func (c Condition) ExtensionName() string {
	return strings.TrimPrefix(c.Exec, ExtensionPrefix)
}

// Clone returns a deep copy of the condition.
func (c Condition) Clone() Condition {
	return Condition{Exec: c.Exec, Args: cloneMap(c.Args)}
}

// ActionConfig is one configured action of a hook.
type ActionConfig struct {
	Action       Action
	Label        string         // display name; defaults to the action string
	AllowFailure bool           // failure is reported but does not fail the hook
	Options      map[string]any // action specific parameters
	Conditions   []Condition    // all must hold for the action to run
}

// NewAction creates an ActionConfig from an action string with empty options.
func NewAction(action string) ActionConfig {
	return ActionConfig{
		Action:  ParseAction(action),
		Options: map[string]any{},
	}
}

// Name returns the label if set, otherwise the action string.
func (a ActionConfig) Name() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Action.String()
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (a ActionConfig) Clone() ActionConfig {
	c := a
	c.Options = cloneMap(a.Options)
	if c.Options == nil {
		c.Options = map[string]any{}
	}
	c.Conditions = nil
	for _, cond := range a.Conditions {
		c.Conditions = append(c.Conditions, cond.Clone())
	}
	return c
}

// HookConfig holds the settings of a single hook, concrete or virtual.
type HookConfig struct {
	Name    string
	Enabled bool
	Actions []ActionConfig // execution order
}

// SetEnabled enables or disables the hook.
func (h *HookConfig) SetEnabled(enabled bool) {
	h.Enabled = enabled
}

// AddAction appends an action to the hook.
func (h *HookConfig) AddAction(a ActionConfig) {
	h.Actions = append(h.Actions, a)
}

// Clone returns a deep copy of the hook config.
func (h *HookConfig) Clone() HookConfig {
	c := HookConfig{Name: h.Name, Enabled: h.Enabled}
	for _, a := range h.Actions {
		c.Actions = append(c.Actions, a.Clone())
	}
	return c
}

// cloneMap deep-copies nested maps and slices; scalars are copied by value.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := maps.Clone(m)
	for k, v := range c {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		c := make([]any, len(v))
		for i, e := range v {
			c[i] = cloneValue(e)
		}
		return c
	case []string:
		return append([]string(nil), v...)
	case []map[string]any:
		c := make([]map[string]any, len(v))
		for i, e := range v {
			c[i] = cloneMap(e)
		}
		return c
	default:
		return v
	}
}
