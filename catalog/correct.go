// ABOUTME: Interactive correction of filenames that break the grammar
// ABOUTME: Loops until the user has confirmed a valid replacement name

package catalog

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// correctName returns path unchanged when its base name is valid. Otherwise
// it asks for a new name until one is accepted, confirmed, renamed and valid.
// There is no retry limit.
func (b *Builder) correctName(path string) (string, error) {
	for {
		filename := filepath.Base(path)
		ext := filepath.Ext(filename)
		base := strings.TrimSuffix(filename, ext)

		err := CheckName(base)
		if err == nil {
			return path, nil
		}

		log.Printf("Wrong format: %s: %v", base, err)

		name, err := b.requestName(filename, ext)
		if err != nil {
			return "", err
		}

		target := filepath.Join(filepath.Dir(path), name+ext)

		if b.opts.DryRun {
			log.Printf("Dry run: would rename %q to %q", filename, name+ext)
		} else if err := b.move(path, target); err != nil {
			log.Printf("Warning: could not rename %q to %q: %v", filename, name+ext, err)
			continue
		}

		path = target
	}
}

// requestName asks for a base name until one is accepted and the rename confirmed
func (b *Builder) requestName(filename, ext string) (string, error) {
	for {
		name, err := b.acceptName()
		if err != nil {
			return "", err
		}

		confirmed, err := b.prompt.Confirm(fmt.Sprintf("Confirm rename %q to %q", filename, name+ext), false)
		if err != nil {
			return "", err
		}

		if confirmed {
			return name, nil
		}
	}
}

func (b *Builder) acceptName() (string, error) {
	for {
		name, err := b.prompt.RequestText("Enter new name:")
		if err != nil {
			return "", err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		accepted, err := b.prompt.Confirm(fmt.Sprintf("Accept name %q?", name), true)
		if err != nil {
			return "", err
		}

		if accepted {
			return name, nil
		}
	}
}
