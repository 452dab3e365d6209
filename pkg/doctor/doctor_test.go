package doctor

import (
	"context"
	"os/exec"
	"testing"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
)

func TestNewCheckerSelectsProbes(t *testing.T) {
	plain, err := config.Parse([]byte(`repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - id: black
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	containerized, err := config.Parse([]byte(`repos:
  - repo: local
    hooks:
      - id: hadolint
        language: docker_image
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := len(NewChecker(plain).checks); got != 1 {
		t.Errorf("plain config: %d probes, want 1 (git only)", got)
	}
	if got := len(NewChecker(containerized).checks); got != 2 {
		t.Errorf("container config: %d probes, want 2 (git + docker)", got)
	}
	if got := len(NewChecker(nil).checks); got != 1 {
		t.Errorf("nil config: %d probes, want 1", got)
	}
}

func TestGitCheck(t *testing.T) {
	result := (&GitCheck{}).Run(context.Background())

	if _, err := exec.LookPath("git"); err != nil {
		if result.Level != LevelWarn {
			t.Errorf("git missing but probe level = %v, want warn", result.Level)
		}
		return
	}
	if result.Level != LevelInfo {
		t.Errorf("git present but probe level = %v, want info: %s", result.Level, result.Message)
	}
}

func TestCheckerRunAggregatesGitOnly(t *testing.T) {
	cfg, err := config.Parse([]byte(`repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - id: black
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// The git probe never returns an error-level result, so Run must succeed
	if err := NewChecker(cfg).Run(context.Background()); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}
