// Package gitfiles lists the working-tree paths a hook declaration applies
// to. It wraps system git, falling back to a filesystem walk outside a git
// work tree, so file filters can be evaluated anywhere.
package gitfiles

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/oleksii-leonov/hookcfg/pkg/log"
)

// IsWorkTree reports whether dir is inside a git work tree
func IsWorkTree(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// List returns the repository-relative, slash-separated paths of all files
// under dir. Inside a git work tree it lists tracked files; elsewhere it
// walks the filesystem, skipping .git.
func List(ctx context.Context, dir string) ([]string, error) {
	if IsWorkTree(ctx, dir) {
		return listTracked(ctx, dir)
	}
	log.Debug("not a git work tree, walking filesystem", "dir", dir)
	return walk(dir)
}

func listTracked(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}

	var files []string
	for _, raw := range bytes.Split(out, []byte{0}) {
		if len(raw) == 0 {
			continue
		}
		files = append(files, string(raw))
	}
	return files, nil
}

func walk(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return files, nil
}
