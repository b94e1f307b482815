package hooks

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/raphi011/hooked/internal/config"
)

// Extension is an in-process action. A returned error fails the action.
type Extension func(ctx context.Context, hc *Context, opts Options) error

// Condition is an in-process guard. A false result skips the action.
type Condition func(ctx context.Context, hc *Context, args Options) (bool, error)

// Plugin observes a hook run. Errors from BeforeHook and BeforeAction abort
// the run; errors from AfterHook and AfterAction are logged.
type Plugin interface {
	BeforeHook(ctx context.Context, hc *Context) error
	BeforeAction(ctx context.Context, hc *Context, action config.ActionConfig) error
	AfterAction(ctx context.Context, hc *Context, action config.ActionConfig, result Result) error
	AfterHook(ctx context.Context, hc *Context, results []Result) error
}

// NopPlugin implements Plugin with no-ops, for embedding.
type NopPlugin struct{}

func (NopPlugin) BeforeHook(context.Context, *Context) error { return nil }

func (NopPlugin) BeforeAction(context.Context, *Context, config.ActionConfig) error { return nil }

func (NopPlugin) AfterAction(context.Context, *Context, config.ActionConfig, Result) error {
	return nil
}

func (NopPlugin) AfterHook(context.Context, *Context, []Result) error { return nil }

// PluginFactory creates a plugin from its configured options.
type PluginFactory func(opts Options) (Plugin, error)

// Registry maps identifiers to extensions, conditions and plugins.
// It is populated once at process start and read-only afterwards.
type Registry struct {
	extensions map[string]Extension
	conditions map[string]Condition
	plugins    map[string]PluginFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extensions: make(map[string]Extension),
		conditions: make(map[string]Condition),
		plugins:    make(map[string]PluginFactory),
	}
}

// RegisterExtension registers an extension under name (without "::").
func (r *Registry) RegisterExtension(name string, ext Extension) {
	r.extensions[name] = ext
}

// RegisterCondition registers a condition under name (without "::").
func (r *Registry) RegisterCondition(name string, cond Condition) {
	r.conditions[name] = cond
}

// RegisterPlugin registers a plugin factory.
func (r *Registry) RegisterPlugin(name string, factory PluginFactory) {
	r.plugins[name] = factory
}

// Extension looks up an extension.
func (r *Registry) Extension(name string) (Extension, bool) {
	ext, ok := r.extensions[name]
	return ext, ok
}

// Condition looks up a condition.
func (r *Registry) Condition(name string) (Condition, bool) {
	cond, ok := r.conditions[name]
	return cond, ok
}

// Plugin creates the plugin registered under name.
func (r *Registry) Plugin(name string, opts Options) (Plugin, error) {
	factory, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("unknown plugin %q", name)
	}
	p, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", name, err)
	}
	return p, nil
}

// Plugins instantiates all plugins declared in cfg, in order.
func (r *Registry) Plugins(cfg *config.Config) ([]Plugin, error) {
	var plugins []Plugin
	for _, decl := range cfg.Plugins() {
		p, err := r.Plugin(decl.Name, decl.Options)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// ExtensionNames returns the registered extension names, sorted.
func (r *Registry) ExtensionNames() []string {
	return slices.Sorted(maps.Keys(r.extensions))
}

// ConditionNames returns the registered condition names, sorted.
func (r *Registry) ConditionNames() []string {
	return slices.Sorted(maps.Keys(r.conditions))
}

// PluginNames returns the registered plugin names, sorted.
func (r *Registry) PluginNames() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}
