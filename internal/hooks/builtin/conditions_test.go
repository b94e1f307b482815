package builtin

import (
	"context"
	"testing"

	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/hooks"
)

func TestOnBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		branch  string
		args    hooks.Options
		want    bool
		wantErr bool
	}{
		{name: "exact", branch: "main", args: hooks.Options{"name": "main"}, want: true},
		{name: "other", branch: "develop", args: hooks.Options{"name": "main"}, want: false},
		{name: "list", branch: "develop", args: hooks.Options{"name": []any{"main", "develop"}}, want: true},
		{name: "glob", branch: "release/2.0", args: hooks.Options{"name": "release/*"}, want: true},
		{name: "missing argument", branch: "main", args: hooks.Options{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hc, _, repo := newContext(t, githook.PreCommit)
			repo.branch = tt.branch
			got, err := OnBranch(context.Background(), hc, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OnBranch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("OnBranch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileConditions(t *testing.T) {
	t.Parallel()

	files := []string{"composer.json", "src/App.php", "docs/readme.md"}

	tests := []struct {
		name  string
		cond  hooks.Condition
		files []any
		want  bool
	}{
		{name: "staged any match", cond: FileStagedAny, files: []any{"*.lock", "composer.json"}, want: true},
		{name: "staged any none", cond: FileStagedAny, files: []any{"*.lock"}, want: false},
		{name: "staged all match", cond: FileStagedAll, files: []any{"*.php", "composer.json"}, want: true},
		{name: "staged all partial", cond: FileStagedAll, files: []any{"*.php", "*.lock"}, want: false},
		{name: "changed any match", cond: FileChangedAny, files: []any{"docs/"}, want: true},
		{name: "changed any none", cond: FileChangedAny, files: []any{"tests/"}, want: false},
		{name: "changed all match", cond: FileChangedAll, files: []any{"docs/", "src/*.php"}, want: true},
		{name: "changed all partial", cond: FileChangedAll, files: []any{"docs/", "tests/"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hc, _, repo := newContext(t, githook.PostMerge)
			repo.staged = files
			repo.changed = files
			got, err := tt.cond(context.Background(), hc, hooks.Options{"files": tt.files})
			if err != nil {
				t.Fatalf("condition error: %v", err)
			}
			if got != tt.want {
				t.Errorf("condition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileConditions_RequireFiles(t *testing.T) {
	t.Parallel()

	hc, _, _ := newContext(t, githook.PreCommit)
	for _, cond := range []hooks.Condition{FileStagedAny, FileStagedAll, FileChangedAny, FileChangedAll} {
		if _, err := cond(context.Background(), hc, hooks.Options{}); err == nil {
			t.Error("condition without files argument = nil error")
		}
	}
}

func TestEnvSet(t *testing.T) {
	t.Parallel()

	hc, _, _ := newContext(t, githook.PreCommit)
	hc.Setenv("HOOKED_ENVSET_TEST", "1")
	hc.Setenv("HOOKED_ENVSET_EMPTY", "")

	tests := []struct {
		name string
		want bool
	}{
		{name: "HOOKED_ENVSET_TEST", want: true},
		{name: "HOOKED_ENVSET_EMPTY", want: false},
		{name: "HOOKED_ENVSET_UNSET", want: false},
	}
	for _, tt := range tests {
		got, err := EnvSet(context.Background(), hc, hooks.Options{"name": tt.name})
		if err != nil {
			t.Fatalf("EnvSet(%s) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("EnvSet(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := EnvSet(context.Background(), hc, hooks.Options{}); err == nil {
		t.Error("EnvSet() without name = nil error")
	}
}
