package gitfiles

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestIsWorkTreeFalseOutsideRepo(t *testing.T) {
	if IsWorkTree(context.Background(), t.TempDir()) {
		t.Error("fresh temp dir reported as a git work tree")
	}
}

func TestListFallsBackToWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brian2/units.py")
	writeFile(t, dir, "brian2/core/network.py")
	writeFile(t, dir, "README.md")
	// .git contents must never appear in listings
	writeFile(t, dir, ".git/config")

	files, err := List(context.Background(), dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	sort.Strings(files)
	want := []string{"README.md", "brian2/core/network.py", "brian2/units.py"}
	if len(files) != len(want) {
		t.Fatalf("List() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestListTracked(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	ctx := context.Background()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test")

	writeFile(t, dir, "brian2/units.py")
	writeFile(t, dir, "untracked.py")
	run("add", "brian2/units.py")
	run("commit", "-m", "initial")

	if !IsWorkTree(ctx, dir) {
		t.Fatal("initialized repo not recognized as work tree")
	}

	files, err := List(ctx, dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 1 || files[0] != "brian2/units.py" {
		t.Errorf("List() = %v, want [brian2/units.py]", files)
	}
}
