// Package checks implements the runner's meta self-checks against a hook
// declaration document and the working tree it governs.
package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/log"
)

// Level represents the severity of a finding
type Level int

const (
	// LevelError indicates a violation that should fail the check run
	LevelError Level = iota
	// LevelWarn indicates a smell that should be addressed but doesn't block
	LevelWarn
	// LevelInfo indicates informational output
	LevelInfo
)

// Finding is a single result produced by a check
type Finding struct {
	Check   string // check id
	Hook    string // offending hook id (empty for document-level findings)
	Level   Level
	Message string
}

// Check inspects a declaration document against the working tree's file list
type Check interface {
	// ID returns the check's hook identifier
	ID() string
	// Description explains what the check verifies
	Description() string
	// Run evaluates the check and returns its findings
	Run(ctx context.Context, cfg *config.Config, files []string) ([]Finding, error)
}

// registry maps meta hook ids to their implementations
var registry = map[string]Check{
	hooksApplyID:      &hooksApplyCheck{},
	uselessExcludesID: &uselessExcludesCheck{},
}

// ByID returns the check implementing the given meta hook id
func ByID(id string) (Check, bool) {
	c, ok := registry[id]
	return c, ok
}

// Runner executes a set of checks and aggregates their findings
type Runner struct {
	checks []Check
}

// NewRunner builds a runner for the meta hooks declared in cfg. When cfg has
// no meta block, every registered check runs.
func NewRunner(cfg *config.Config) (*Runner, error) {
	meta := cfg.FindRepo(config.MetaRepo)
	if meta == nil {
		return &Runner{checks: allChecks()}, nil
	}

	var selected []Check
	for _, hook := range meta.Hooks {
		c, ok := ByID(hook.ID)
		if !ok {
			return nil, fmt.Errorf("unknown meta hook %q", hook.ID)
		}
		selected = append(selected, c)
	}
	return &Runner{checks: selected}, nil
}

func allChecks() []Check {
	return []Check{registry[hooksApplyID], registry[uselessExcludesID]}
}

// Run executes all selected checks in order and returns their findings
func (r *Runner) Run(ctx context.Context, cfg *config.Config, files []string) ([]Finding, error) {
	var findings []Finding
	for _, check := range r.checks {
		log.Debug("running meta check", "check", check.ID(), "files", len(files))
		fs, err := check.Run(ctx, cfg, files)
		if err != nil {
			return nil, fmt.Errorf("check %s failed: %w", check.ID(), err)
		}
		findings = append(findings, fs...)
	}
	return findings, nil
}

// HasErrors reports whether any finding is error-level
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Level == LevelError {
			return true
		}
	}
	return false
}

// Summarize renders findings as one line each, for CLI output
func Summarize(findings []Finding) string {
	var b strings.Builder
	for _, f := range findings {
		level := "info"
		switch f.Level {
		case LevelError:
			level = "error"
		case LevelWarn:
			level = "warning"
		}
		if f.Hook != "" {
			fmt.Fprintf(&b, "%s: [%s] %s: %s\n", level, f.Check, f.Hook, f.Message)
		} else {
			fmt.Fprintf(&b, "%s: [%s] %s\n", level, f.Check, f.Message)
		}
	}
	return b.String()
}
