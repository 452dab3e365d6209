// Package doctor probes the environment a hook declaration document depends
// on: git for working-tree listings, the Docker daemon when any hook runs in
// a container.
package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/docker/docker/client"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/log"
)

// Level represents the severity of a probe result
type Level int

const (
	// LevelError indicates a failure that prevents the toolkit from working
	LevelError Level = iota
	// LevelWarn indicates a degraded setup that doesn't block
	LevelWarn
	// LevelInfo indicates informational output
	LevelInfo
)

// pingTimeout bounds the Docker daemon probe
const pingTimeout = 5 * time.Second

// Result is the outcome of a single probe
type Result struct {
	Name    string
	Level   Level
	Message string
	Err     error
}

// Check is a single environment probe
type Check interface {
	// Name returns the probe name
	Name() string
	// Run executes the probe
	Run(ctx context.Context) Result
}

// Checker runs a collection of probes
type Checker struct {
	checks []Check
}

// NewChecker builds a checker for the given declaration document. Git is
// always probed; the Docker daemon only when a hook declares a container
// language.
func NewChecker(cfg *config.Config) *Checker {
	c := &Checker{checks: []Check{&GitCheck{}}}
	if cfg != nil && needsDocker(cfg) {
		c.checks = append(c.checks, &DockerCheck{})
	}
	return c
}

func needsDocker(cfg *config.Config) bool {
	for _, ref := range cfg.Hooks() {
		switch ref.Hook.Language {
		case "docker", "docker_image":
			return true
		}
	}
	return false
}

// Run executes all probes and returns an error if any fails at error level
func (c *Checker) Run(ctx context.Context) error {
	var failures []string

	for _, check := range c.checks {
		result := check.Run(ctx)

		switch result.Level {
		case LevelError:
			log.Error("environment check failed", "check", result.Name, "message", result.Message)
			failures = append(failures, fmt.Sprintf("%s: %s", result.Name, result.Message))
		case LevelWarn:
			log.Warn("environment check warning", "check", result.Name, "message", result.Message)
		case LevelInfo:
			log.Info("environment check", "check", result.Name, "message", result.Message)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("environment checks failed:\n  - %s", strings.Join(failures, "\n  - "))
	}
	return nil
}

// GitCheck verifies that git is installed
type GitCheck struct{}

func (c *GitCheck) Name() string { return "git" }

func (c *GitCheck) Run(ctx context.Context) Result {
	path, err := exec.LookPath("git")
	if err != nil {
		return Result{
			Name:    c.Name(),
			Level:   LevelWarn,
			Message: "git not found on PATH; file listings fall back to a filesystem walk",
			Err:     err,
		}
	}
	return Result{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: fmt.Sprintf("git found at %s", path),
	}
}

// DockerCheck verifies that the Docker daemon is reachable, for declarations
// whose hooks run in containers
type DockerCheck struct{}

func (c *DockerCheck) Name() string { return "docker" }

func (c *DockerCheck) Run(ctx context.Context) Result {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return Result{
			Name:    c.Name(),
			Level:   LevelError,
			Message: fmt.Sprintf("failed to create docker client: %v", err),
			Err:     err,
		}
	}
	defer cli.Close()

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := cli.Ping(pingCtx); err != nil {
		return Result{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "docker daemon not reachable; container-language hooks cannot run",
			Err:     err,
		}
	}
	return Result{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: "docker daemon reachable",
	}
}
