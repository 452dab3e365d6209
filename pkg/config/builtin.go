package config

import (
	_ "embed"
	"fmt"
)

// defaultYAML is the embedded builtin declaration set
//
//go:embed default.yaml
var defaultYAML []byte

// Default returns the builtin declaration set: pyupgrade, isort, and black
// scoped to the brian2 source tree, plus the runner's two meta self-checks.
func Default() (*Config, error) {
	cfg, err := ParseStrict(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse builtin config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("builtin config is invalid: %w", err)
	}
	return cfg, nil
}

// DefaultYAML returns the builtin declaration set as raw YAML, for writing a
// fresh declaration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
