// ABOUTME: Keeps on-disk filenames in sync with the catalog model
// ABOUTME: Renames are confirmed, never overwrite, and failures only warn

package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned when a rename would replace another file
var ErrTargetExists = errors.New("target already exists")

// syncEdition renames every variant of e to the edition's canonical name
func (b *Builder) syncEdition(e *Edition) error {
	base := e.CanonicalName()

	for _, v := range e.Variants {
		path, err := b.syncPath(v.Path, base, v.Extension)
		if err != nil {
			return err
		}

		v.Path = path
	}

	return nil
}

// syncPath renames path to base+ext after confirmation and returns the
// resulting path. Rename failures are logged and the old path is kept; only
// prompter errors are returned.
func (b *Builder) syncPath(path, base, ext string) (string, error) {
	current := filepath.Base(path)
	want := base + ext

	if current == want {
		return path, nil
	}

	if b.opts.DryRun {
		log.Printf("Dry run: would rename %q to %q", current, want)
		return path, nil
	}

	ok, err := b.prompt.Confirm(fmt.Sprintf("Confirm rename %q to %q", current, want), true)
	if err != nil || !ok {
		return path, err
	}

	target := filepath.Join(filepath.Dir(path), want)
	if err := b.move(path, target); err != nil {
		log.Printf("Warning: could not rename %q to %q: %v", current, want, err)
		return path, nil
	}

	b.opts.Logf("Renamed %q to %q", current, want)

	return target, nil
}

// move renames from to to, refusing to replace a different existing file.
// Case-only renames on case-insensitive filesystems see the same file and pass.
func (b *Builder) move(from, to string) error {
	if dst, err := os.Lstat(to); err == nil {
		src, err := os.Lstat(from)
		if err != nil || !os.SameFile(src, dst) {
			return fmt.Errorf("%w: %s", ErrTargetExists, filepath.Base(to))
		}
	}

	return b.opts.Rename(from, to)
}
