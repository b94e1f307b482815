package hooks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/hooked/internal/config"
)

func TestExecutor_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		command    string
		wantStatus Status
		wantOutput string
	}{
		{name: "success", command: "echo hello", wantStatus: StatusPassed, wantOutput: "hello"},
		{name: "failure with output", command: "echo broken >&2; exit 3", wantStatus: StatusFailed, wantOutput: "broken"},
		{name: "failure without output", command: "exit 2", wantStatus: StatusFailed, wantOutput: "exit status 2"},
		{name: "runs in repository dir", command: "test -d .", wantStatus: StatusPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hc, _, _ := newTestContext(t, config.New("hooked.toml", true, config.Settings{}), "pre-commit")
			res := NewExecutor(hc, NewRegistry()).Execute(context.Background(), config.NewAction(tt.command))

			if res.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v (output %q)", res.Status, tt.wantStatus, res.Output)
			}
			if res.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", res.Output, tt.wantOutput)
			}
			if res.Failed() && (res.Failure == nil || res.Failure.Message != tt.wantOutput) {
				t.Errorf("Failure = %+v, want message %q", res.Failure, tt.wantOutput)
			}
		})
	}
}

func TestExecutor_CommandEnvironment(t *testing.T) {
	t.Parallel()

	hc, _, _ := newTestContext(t, config.New("hooked.toml", true, config.Settings{}), "pre-commit")
	hc.Setenv("HOOKED_TEST_VALUE", "first")
	hc.Setenv("HOOKED_TEST_VALUE", "second")

	res := NewExecutor(hc, NewRegistry()).Execute(context.Background(), config.NewAction(`echo "$HOOKED_TEST_VALUE"`))
	if res.Output != "second" {
		t.Errorf("Output = %q, want second", res.Output)
	}
}

func TestExecutor_DockerMode(t *testing.T) {
	t.Parallel()

	t.Run("uses run path", func(t *testing.T) {
		t.Parallel()
		cfg := config.New("hooked.toml", true, config.Settings{
			Run: config.RunConfig{Mode: config.RunModeDocker, Exec: "echo container {path}", Path: "/app"},
		})
		hc, _, _ := newTestContext(t, cfg, "pre-commit")
		res := NewExecutor(hc, NewRegistry()).Execute(context.Background(), config.NewAction("lint"))
		if res.Output != "container /app lint" {
			t.Errorf("Output = %q, want %q", res.Output, "container /app lint")
		}
	})

	t.Run("falls back to repository dir", func(t *testing.T) {
		t.Parallel()
		cfg := config.New("hooked.toml", true, config.Settings{
			Run: config.RunConfig{Mode: config.RunModeDocker, Exec: "echo {path}"},
		})
		hc, _, repo := newTestContext(t, cfg, "pre-commit")
		res := NewExecutor(hc, NewRegistry()).Execute(context.Background(), config.NewAction("lint"))
		if want := repo.dir + " lint"; res.Output != want {
			t.Errorf("Output = %q, want %q", res.Output, want)
		}
	})
}

func TestWrapCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  config.RunConfig
		want string
	}{
		{name: "local", run: config.RunConfig{Mode: config.RunModeLocal, Exec: "docker exec app"}, want: "make test"},
		{name: "docker without exec", run: config.RunConfig{Mode: config.RunModeDocker}, want: "make test"},
		{name: "docker", run: config.RunConfig{Mode: config.RunModeDocker, Exec: "docker exec app"}, want: "docker exec app make test"},
		{name: "docker with path", run: config.RunConfig{Mode: config.RunModeDocker, Exec: "docker exec -w {path} app", Path: "/srv"}, want: "docker exec -w /srv app make test"},
		{name: "docker path fallback", run: config.RunConfig{Mode: config.RunModeDocker, Exec: "docker exec -w {path} app"}, want: "docker exec -w /repo app make test"},
		{name: "other runtime", run: config.RunConfig{Mode: "podman", Exec: "podman exec app"}, want: "podman exec app make test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := wrapCommand(tt.run, "/repo", "make test"); got != tt.want {
				t.Errorf("wrapCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecutor_Extension(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.RegisterExtension("ok", func(context.Context, *Context, Options) error { return nil })
	reg.RegisterExtension("fail", func(context.Context, *Context, Options) error { return errors.New("rule violated") })
	reg.RegisterExtension("panic", func(context.Context, *Context, Options) error { panic("boom") })
	reg.RegisterExtension("options", func(_ context.Context, _ *Context, opts Options) error {
		if opts.Int("limit", 0) != 5 {
			return errors.New("limit not passed")
		}
		return nil
	})

	tests := []struct {
		name        string
		action      config.ActionConfig
		wantStatus  Status
		wantMessage string
	}{
		{name: "success", action: config.NewAction("::ok"), wantStatus: StatusPassed},
		{name: "error", action: config.NewAction("::fail"), wantStatus: StatusFailed, wantMessage: "rule violated"},
		{name: "panic recovered", action: config.NewAction("::panic"), wantStatus: StatusFailed, wantMessage: "panic: boom"},
		{name: "unknown", action: config.NewAction("::nope"), wantStatus: StatusFailed, wantMessage: `unknown extension "::nope"`},
		{
			name: "options passed",
			action: func() config.ActionConfig {
				a := config.NewAction("::options")
				a.Options["limit"] = int64(5)
				return a
			}(),
			wantStatus: StatusPassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hc, _, _ := newTestContext(t, config.New("hooked.toml", true, config.Settings{}), "pre-commit")
			res := NewExecutor(hc, reg).Execute(context.Background(), tt.action)
			if res.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v (%q)", res.Status, tt.wantStatus, res.Output)
			}
			if tt.wantMessage != "" && res.Failure.Message != tt.wantMessage {
				t.Errorf("Failure.Message = %q, want %q", res.Failure.Message, tt.wantMessage)
			}
		})
	}
}

func TestExecutor_Conditions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.RegisterCondition("yes", func(context.Context, *Context, Options) (bool, error) { return true, nil })
	reg.RegisterCondition("no", func(context.Context, *Context, Options) (bool, error) { return false, nil })
	reg.RegisterCondition("broken", func(context.Context, *Context, Options) (bool, error) {
		return false, errors.New("cannot decide")
	})
	reg.RegisterCondition("arg", func(_ context.Context, _ *Context, args Options) (bool, error) {
		return args.String("value", "") == "x", nil
	})

	tests := []struct {
		name       string
		conditions []config.Condition
		wantStatus Status
		wantOutput string
	}{
		{name: "no conditions", wantStatus: StatusPassed, wantOutput: "ran"},
		{name: "all hold", conditions: []config.Condition{{Exec: "::yes"}, {Exec: "true"}}, wantStatus: StatusPassed, wantOutput: "ran"},
		{name: "extension false", conditions: []config.Condition{{Exec: "::yes"}, {Exec: "::no"}}, wantStatus: StatusSkipped, wantOutput: "condition not met: ::no"},
		{name: "shell false", conditions: []config.Condition{{Exec: "false"}}, wantStatus: StatusSkipped, wantOutput: "condition not met: false"},
		{name: "shell placeholder", conditions: []config.Condition{{Exec: "test {branch} = main"}}, wantStatus: StatusPassed, wantOutput: "ran"},
		{name: "args passed", conditions: []config.Condition{{Exec: "::arg", Args: map[string]any{"value": "x"}}}, wantStatus: StatusPassed, wantOutput: "ran"},
		{name: "condition error fails", conditions: []config.Condition{{Exec: "::broken"}}, wantStatus: StatusFailed, wantOutput: "condition ::broken: cannot decide"},
		{name: "unknown condition fails", conditions: []config.Condition{{Exec: "::missing"}}, wantStatus: StatusFailed, wantOutput: "condition ::missing: unknown condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hc, _, _ := newTestContext(t, config.New("hooked.toml", true, config.Settings{}), "pre-commit")
			a := config.NewAction("echo ran")
			a.Conditions = tt.conditions
			res := NewExecutor(hc, reg).Execute(context.Background(), a)
			if res.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v (%q)", res.Status, tt.wantStatus, res.Output)
			}
			if res.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", res.Output, tt.wantOutput)
			}
		})
	}
}

func TestExecutor_PlaceholderError(t *testing.T) {
	t.Parallel()

	hc, _, repo := newTestContext(t, config.New("hooked.toml", true, config.Settings{}), "pre-commit")
	repo.err = errors.New("git broke")

	res := NewExecutor(hc, NewRegistry()).Execute(context.Background(), config.NewAction("lint {staged-files}"))
	if !res.Failed() {
		t.Fatalf("Status = %v, want failed", res.Status)
	}
	if !strings.Contains(res.Output, "git broke") {
		t.Errorf("Output = %q, want it to mention the git error", res.Output)
	}
}
