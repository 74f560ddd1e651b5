// ABOUTME: Edition-level matching and merging of file-type variants
// ABOUTME: Resolves key mismatches between files of the same edition with the user

package catalog

import (
	"fmt"
	"strings"

	"song-catalog/camelot"
)

// Match compares version and notes; the key is metadata, not identity
func (e *Edition) Match(in *ParsedFilename, m Matcher) Match {
	return m.Classify(
		[2]string{e.Version, in.Version},
		[2]string{e.Notes, in.Notes},
	)
}

// Append adds the incoming file as a new file type of the edition. It returns
// false when the user says the keys really differ, in which case the file
// should become an edition of its own.
func (e *Edition) Append(b *Builder, in *ParsedFilename) (bool, error) {
	if e.Key != in.Key {
		same, err := b.resolveKey(e, in)
		if err != nil || !same {
			return false, err
		}
	}

	for _, v := range e.Variants {
		if strings.EqualFold(v.Extension, in.Extension) {
			return false, fmt.Errorf("%w: %q and %q", ErrDuplicateVariant, v.Path, in.SourcePath)
		}
	}

	e.Variants = append(e.Variants, &FileVariant{Extension: in.Extension, Path: in.SourcePath})

	return true, b.syncEdition(e)
}

// resolveKey asks whether the edition and the incoming file share a key and,
// if so, which key is right. The losing side takes the winning key.
func (b *Builder) resolveKey(e *Edition, in *ParsedFilename) (bool, error) {
	listen, err := b.prompt.Confirm(fmt.Sprintf("Key mismatch between %s and %s, do you want to open the files to listen to them?",
		e.CanonicalName(), in.BaseName()), false)
	if err != nil {
		return false, err
	}

	if listen {
		for _, v := range e.Variants {
			b.prompt.Preview(v.Path)
		}

		b.prompt.Preview(in.SourcePath)
	}

	same, err := b.prompt.Confirm("Are these in the same key?", false)
	if err != nil || !same {
		return false, err
	}

	options := []string{
		b.keyLabel(e.CanonicalName(), e.Key, e.Variants[0].Path, ""),
		b.keyLabel(in.BaseName(), in.Key, in.SourcePath, e.Key),
	}

	idx, err := b.choose(options, "Which one has the correct key?", false)
	if err != nil {
		return false, err
	}

	if idx == 0 {
		// The incoming file is renamed when it joins the edition
		in.Key = e.Key
		return true, nil
	}

	e.Key = in.Key

	return true, b.syncEdition(e)
}

// keyLabel describes one side of a key mismatch, with the key found in the
// file's tags and the relation to the other side's key when known
func (b *Builder) keyLabel(name, key, path, other string) string {
	var details []string

	if b.opts.KeyHint != nil {
		if tagged := b.opts.KeyHint(path); tagged != "" {
			details = append(details, "tagged "+tagged)
		}
	}

	if other != "" {
		if rel := camelot.Relation(other, key); rel != "" {
			details = append(details, rel)
		}
	}

	if len(details) == 0 {
		return name
	}

	return name + " (" + strings.Join(details, ", ") + ")"
}
