package pkgcount

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCountDir(t *testing.T) {
	t.Run("all entries", func(t *testing.T) {
		dir := touch(t, "a", "b", "c")
		got, err := countDir(dir, nil)
		if err != nil {
			t.Fatalf("countDir: %v", err)
		}
		if got != 3 {
			t.Errorf("got %d, want 3", got)
		}
	})

	t.Run("extension filter", func(t *testing.T) {
		dir := touch(t, "bash.list", "bash.md5sums", "coreutils.list", "coreutils.postinst")
		got, err := countDir(dir, withExt(".list"))
		if err != nil {
			t.Fatalf("countDir: %v", err)
		}
		if got != 2 {
			t.Errorf("got %d, want 2", got)
		}
	})

	t.Run("dotfiles skipped", func(t *testing.T) {
		dir := touch(t, ".keepme", "wget", "jq")
		got, err := countDir(dir, visible)
		if err != nil {
			t.Fatalf("countDir: %v", err)
		}
		if got != 2 {
			t.Errorf("got %d, want 2", got)
		}
	})

	t.Run("name exclusion", func(t *testing.T) {
		dir := touch(t, "scoop", "git", "ripgrep")
		got, err := countDir(dir, notNamed("scoop"))
		if err != nil {
			t.Fatalf("countDir: %v", err)
		}
		if got != 2 {
			t.Errorf("got %d, want 2", got)
		}
	})

	t.Run("missing dir is not present", func(t *testing.T) {
		_, err := countDir(filepath.Join(t.TempDir(), "nope"), nil)
		if !errors.Is(err, ErrNotPresent) {
			t.Fatalf("want ErrNotPresent, got %v", err)
		}
	})
}

func TestCountDirDepth2(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"app-editors/vim-9.1",
		"app-editors/nano-7.2",
		"sys-apps/coreutils-9.4",
	} {
		if err := os.MkdirAll(filepath.Join(root, p), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Stray files at either level are not packages.
	if err := os.WriteFile(filepath.Join(root, "world"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "app-editors", ".lock"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := countDirDepth2(root)
	if err != nil {
		t.Fatalf("countDirDepth2: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}

	if _, err := countDirDepth2(filepath.Join(root, "missing")); !errors.Is(err, ErrNotPresent) {
		t.Errorf("want ErrNotPresent, got %v", err)
	}
}
