package plugins

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/hooked/internal/hooks"
)

// Env exports the custom settings as environment variables for every
// command run by the hook. Keys are upper-cased, dots and dashes become
// underscores: custom.php-version becomes HOOKED_CUSTOM_PHP_VERSION.
// Only scalar values are exported.
type Env struct {
	hooks.NopPlugin

	prefix string
}

// NewEnv creates an Env plugin. The "prefix" option replaces the default
// prefix HOOKED_CUSTOM_.
func NewEnv(opts hooks.Options) (hooks.Plugin, error) {
	return &Env{prefix: opts.String("prefix", "HOOKED_CUSTOM_")}, nil
}

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_", " ", "_")

func (e *Env) BeforeHook(_ context.Context, hc *hooks.Context) error {
	custom := hc.Config.CustomSettings()
	keys := make([]string, 0, len(custom))
	for k := range custom {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		switch v := custom[k].(type) {
		case string, bool, int, int64, float64:
			hc.Setenv(e.prefix+strings.ToUpper(envKeyReplacer.Replace(k)), fmt.Sprint(v))
		}
	}
	return nil
}
