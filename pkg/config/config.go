// Package config models the hook declaration document consumed by
// pre-commit-style runners: an ordered list of repositories, each pinning a
// revision and declaring the hooks that run against matching files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the conventional name of the declaration file
	DefaultFileName = ".pre-commit-config.yaml"

	// MetaRepo is the sentinel source for the runner's built-in self-checks.
	// Meta entries carry no revision; the runner resolves them itself.
	MetaRepo = "meta"

	// LocalRepo is the sentinel source for hooks defined in the repository
	// itself rather than fetched from a pinned remote
	LocalRepo = "local"
)

// Config is an ordered hook declaration document. Repo order is execution
// order and survives round-trips.
type Config struct {
	Repos []Repo `yaml:"repos"`
}

// Repo declares a hook source: a repository URL (or the meta/local sentinel),
// a pinned revision, and the hooks it provides.
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

// Hook is a single named check supplied by a repo block.
type Hook struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name,omitempty"`
	Args     []string `yaml:"args,omitempty"`
	Files    string   `yaml:"files,omitempty"`
	Exclude  string   `yaml:"exclude,omitempty"`
	Language string   `yaml:"language,omitempty"`
}

// IsMeta reports whether the repo is the runner's meta sentinel
func (r *Repo) IsMeta() bool {
	return r.Repo == MetaRepo
}

// IsLocal reports whether the repo declares local hooks
func (r *Repo) IsLocal() bool {
	return r.Repo == LocalRepo
}

// IsPinned reports whether the repo references an external source that must
// carry a revision pin
func (r *Repo) IsPinned() bool {
	return !r.IsMeta() && !r.IsLocal()
}

// DisplayName returns the hook's name when set, falling back to its id
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// Parse decodes a declaration document. Unknown fields are tolerated, the way
// the external runner warns but proceeds.
func Parse(data []byte) (*Config, error) {
	return parse(data, false)
}

// ParseStrict decodes a declaration document and rejects unknown fields
func ParseStrict(data []byte) (*Config, error) {
	return parse(data, true)
}

func parse(data []byte, strict bool) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: no repos declared")
		}
		return nil, fmt.Errorf("failed to parse hook declarations: %w", err)
	}
	return &cfg, nil
}

// Marshal serializes the document canonically. Parsing the output yields a
// document deeply equal to cfg.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal hook declarations: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize hook declarations: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks the document invariants: pinned repos carry a revision, the
// meta repo carries none, hook ids are unique within a repo block, and every
// file filter compiles as a regular expression.
func (c *Config) Validate() error {
	if len(c.Repos) == 0 {
		return errors.New("no repos declared")
	}

	for i, repo := range c.Repos {
		if strings.TrimSpace(repo.Repo) == "" {
			return fmt.Errorf("repos[%d].repo is required", i)
		}
		if repo.IsPinned() && strings.TrimSpace(repo.Rev) == "" {
			return fmt.Errorf("repos[%d].rev is required for repo %q", i, repo.Repo)
		}
		if !repo.IsPinned() && repo.Rev != "" {
			return fmt.Errorf("repos[%d].rev must not be set for the %s repo", i, repo.Repo)
		}
		if len(repo.Hooks) == 0 {
			return fmt.Errorf("repos[%d] (%s) declares no hooks", i, repo.Repo)
		}

		seen := make(map[string]int, len(repo.Hooks))
		for j, hook := range repo.Hooks {
			if strings.TrimSpace(hook.ID) == "" {
				return fmt.Errorf("repos[%d].hooks[%d].id is required", i, j)
			}
			if prev, dup := seen[hook.ID]; dup {
				return fmt.Errorf("repos[%d].hooks[%d] duplicates hook id %q from hooks[%d]", i, j, hook.ID, prev)
			}
			seen[hook.ID] = j

			if hook.Files != "" {
				if _, err := regexp.Compile(hook.Files); err != nil {
					return fmt.Errorf("repos[%d].hooks[%d].files: invalid regular expression: %w", i, j, err)
				}
			}
			if hook.Exclude != "" {
				if _, err := regexp.Compile(hook.Exclude); err != nil {
					return fmt.Errorf("repos[%d].hooks[%d].exclude: invalid regular expression: %w", i, j, err)
				}
			}
		}
	}
	return nil
}

// FindRepo returns the first repo block whose source matches src
func (c *Config) FindRepo(src string) *Repo {
	for i := range c.Repos {
		if c.Repos[i].Repo == src {
			return &c.Repos[i]
		}
	}
	return nil
}

// HookRef pairs a hook with the repo block declaring it
type HookRef struct {
	Repo *Repo
	Hook *Hook
}

// Hooks returns all declared hooks in execution order
func (c *Config) Hooks() []HookRef {
	var refs []HookRef
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			refs = append(refs, HookRef{Repo: &c.Repos[i], Hook: &c.Repos[i].Hooks[j]})
		}
	}
	return refs
}
