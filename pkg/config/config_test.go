package config

import (
	"reflect"
	"strings"
	"testing"
)

const sampleYAML = `repos:
  - repo: https://github.com/asottile/pyupgrade
    rev: v3.3.1
    hooks:
      - id: pyupgrade
        args: ["--py38-plus"]
        files: '^brian2/.*\.pyi?$'
        exclude: '^brian2/_version.py$'
  - repo: meta
    hooks:
      - id: check-hooks-apply
      - id: check-useless-excludes
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(cfg.Repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(cfg.Repos))
	}

	first := cfg.Repos[0]
	if first.Repo != "https://github.com/asottile/pyupgrade" {
		t.Errorf("unexpected repo: %s", first.Repo)
	}
	if first.Rev != "v3.3.1" {
		t.Errorf("unexpected rev: %s", first.Rev)
	}
	if len(first.Hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(first.Hooks))
	}
	hook := first.Hooks[0]
	if hook.ID != "pyupgrade" {
		t.Errorf("unexpected hook id: %s", hook.ID)
	}
	if !reflect.DeepEqual(hook.Args, []string{"--py38-plus"}) {
		t.Errorf("unexpected args: %v", hook.Args)
	}
	if hook.Files != `^brian2/.*\.pyi?$` {
		t.Errorf("unexpected files pattern: %s", hook.Files)
	}
	if hook.Exclude != `^brian2/_version.py$` {
		t.Errorf("unexpected exclude pattern: %s", hook.Exclude)
	}

	meta := cfg.Repos[1]
	if !meta.IsMeta() {
		t.Error("expected second repo to be meta")
	}
	if meta.Rev != "" {
		t.Errorf("meta repo must not carry a rev, got %q", meta.Rev)
	}
	if len(meta.Hooks) != 2 {
		t.Errorf("expected 2 meta hooks, got %d", len(meta.Hooks))
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if _, err := Parse([]byte("")); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestParseStrictRejectsUnknownFields(t *testing.T) {
	data := `repos:
  - repo: meta
    hooks:
      - id: check-hooks-apply
        bogus_field: yes
`
	if _, err := ParseStrict([]byte(data)); err == nil {
		t.Error("expected unknown field error")
	}
	if _, err := Parse([]byte(data)); err != nil {
		t.Errorf("plain Parse should tolerate unknown fields, got: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	again, err := Parse(data)
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, again) {
		t.Errorf("round-trip changed the document:\nbefore: %#v\nafter:  %#v", cfg, again)
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	data := `repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - id: black
  - repo: https://github.com/pycqa/isort
    rev: 5.12.0
    hooks:
      - id: isort
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}

	if again.Repos[0].Hooks[0].ID != "black" || again.Repos[1].Hooks[0].ID != "isort" {
		t.Errorf("execution order not preserved: %v, %v", again.Repos[0].Hooks[0].ID, again.Repos[1].Hooks[0].ID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid document",
			yaml:    sampleYAML,
			wantErr: "",
		},
		{
			name:    "no repos",
			yaml:    "repos: []\n",
			wantErr: "no repos declared",
		},
		{
			name: "missing rev on pinned repo",
			yaml: `repos:
  - repo: https://github.com/psf/black
    hooks:
      - id: black
`,
			wantErr: "repos[0].rev is required",
		},
		{
			name: "rev on meta repo",
			yaml: `repos:
  - repo: meta
    rev: v1.0.0
    hooks:
      - id: check-hooks-apply
`,
			wantErr: "repos[0].rev must not be set",
		},
		{
			name: "repo without hooks",
			yaml: `repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks: []
`,
			wantErr: "declares no hooks",
		},
		{
			name: "duplicate hook id within repo",
			yaml: `repos:
  - repo: meta
    hooks:
      - id: check-hooks-apply
      - id: check-hooks-apply
`,
			wantErr: `duplicates hook id "check-hooks-apply"`,
		},
		{
			name: "missing hook id",
			yaml: `repos:
  - repo: meta
    hooks:
      - name: some hook
`,
			wantErr: "repos[0].hooks[0].id is required",
		},
		{
			name: "invalid files pattern",
			yaml: `repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - id: black
        files: '['
`,
			wantErr: "repos[0].hooks[0].files: invalid regular expression",
		},
		{
			name: "invalid exclude pattern",
			yaml: `repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - id: black
        exclude: '(unclosed'
`,
			wantErr: "repos[0].hooks[0].exclude: invalid regular expression",
		},
		{
			name: "local repo needs no rev",
			yaml: `repos:
  - repo: local
    hooks:
      - id: my-check
        name: My Check
`,
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestHooksIteration(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	refs := cfg.Hooks()
	if len(refs) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(refs))
	}
	if refs[0].Hook.ID != "pyupgrade" || refs[1].Hook.ID != "check-hooks-apply" || refs[2].Hook.ID != "check-useless-excludes" {
		t.Errorf("hooks out of order: %s, %s, %s", refs[0].Hook.ID, refs[1].Hook.ID, refs[2].Hook.ID)
	}
	if !refs[1].Repo.IsMeta() {
		t.Error("expected check-hooks-apply to come from the meta repo")
	}
}

func TestFindRepo(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if repo := cfg.FindRepo(MetaRepo); repo == nil {
		t.Error("expected to find meta repo")
	}
	if repo := cfg.FindRepo("https://github.com/nonexistent/repo"); repo != nil {
		t.Errorf("expected nil for unknown repo, got %v", repo)
	}
}

func TestDisplayName(t *testing.T) {
	h := Hook{ID: "black"}
	if h.DisplayName() != "black" {
		t.Errorf("DisplayName() = %s, want black", h.DisplayName())
	}
	h.Name = "Black formatter"
	if h.DisplayName() != "Black formatter" {
		t.Errorf("DisplayName() = %s, want Black formatter", h.DisplayName())
	}
}
