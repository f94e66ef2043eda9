package pkgcount

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// countDir counts the entries of a package database directory. A missing
// directory means the manager is not present; any other read error means
// the database exists but is unreadable.
func countDir(dir string, keep func(fs.DirEntry) bool) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotPresent
		}
		return 0, &ReadError{Path: dir, Err: err}
	}

	var n uint64
	for _, e := range entries {
		if keep == nil || keep(e) {
			n++
		}
	}
	return n, nil
}

// withExt keeps entries carrying the given filename extension.
func withExt(ext string) func(fs.DirEntry) bool {
	return func(e fs.DirEntry) bool {
		return filepath.Ext(e.Name()) == ext
	}
}

// visible skips dotfile entries such as Homebrew's Cellar/.keepme.
func visible(e fs.DirEntry) bool {
	return !strings.HasPrefix(e.Name(), ".")
}

// notNamed skips a single well-known entry, e.g. Scoop's own install dir.
func notNamed(name string) func(fs.DirEntry) bool {
	return func(e fs.DirEntry) bool {
		return e.Name() != name
	}
}

// countDirDepth2 counts the second-level directories of a two-level
// category/package tree, the layout Portage keeps under /var/db/pkg.
func countDirDepth2(root string) (uint64, error) {
	categories, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNotPresent
		}
		return 0, &ReadError{Path: root, Err: err}
	}

	var n uint64
	for _, cat := range categories {
		if !cat.IsDir() {
			continue
		}
		pkgs, err := os.ReadDir(filepath.Join(root, cat.Name()))
		if err != nil {
			continue
		}
		for _, p := range pkgs {
			if p.IsDir() {
				n++
			}
		}
	}
	return n, nil
}
