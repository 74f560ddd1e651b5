// ABOUTME: Collection builder orchestrating parse, song match, edition match and renames
// ABOUTME: Owns the catalog and is its only writer during a run

package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"song-catalog/camelot"
)

// ErrDuplicateVariant signals a second file of the same type for one edition.
// Either a true duplicate slipped past the scan or an earlier match was wrong;
// both need manual intervention.
var ErrDuplicateVariant = errors.New("duplicate file type in edition")

// Options configures a Builder
type Options struct {
	Dir     string  // Directory holding the files; entries are relative to it
	Matcher Matcher // Similarity banding for songs and editions

	// AutoAcceptSingleSong accepts a lone near song match without prompting
	AutoAcceptSingleSong bool
	// PromptNewEdition shows the edition picker even when it only holds "No matches"
	PromptNewEdition bool
	// DryRun logs renames instead of performing them
	DryRun bool

	// KeyHint returns the key stored in the file's tags, or "" (optional)
	KeyHint func(path string) string
	// Logf receives debug messages (optional)
	Logf func(format string, args ...interface{})
	// Rename moves a file (defaults to os.Rename)
	Rename func(oldpath, newpath string) error
}

// Builder resolves incoming files against the catalog
type Builder struct {
	opts       Options
	prompt     Prompter
	collection *Collection
}

// NewBuilder creates a builder with an empty collection
func NewBuilder(opts Options, prompt Prompter) *Builder {
	if opts.Rename == nil {
		opts.Rename = os.Rename
	}

	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}

	if opts.Matcher.Metric == "" {
		opts.Matcher = DefaultMatcher()
	}

	return &Builder{
		opts:       opts,
		prompt:     prompt,
		collection: &Collection{},
	}
}

// Collection returns the catalog built so far
func (b *Builder) Collection() *Collection {
	return b.collection
}

// Analyse adds every entry to the catalog in lexicographic order so that
// prompt sequences are reproducible across runs. Cancelling ctx stops the
// scan between entries and returns the catalog built so far.
func (b *Builder) Analyse(ctx context.Context, entries []string) (*Collection, error) {
	sorted := append([]string(nil), entries...)
	sort.Strings(sorted)

	for _, entry := range sorted {
		if err := ctx.Err(); err != nil {
			return b.collection, fmt.Errorf("scan interrupted before %q: %w", entry, err)
		}

		if err := b.Add(entry); err != nil {
			return b.collection, fmt.Errorf("failed to add %q: %w", entry, err)
		}
	}

	return b.collection, nil
}

// Add parses one file, resolves it against the catalog and merges it
func (b *Builder) Add(filename string) error {
	path := filepath.Join(b.opts.Dir, filename)
	if b.collection.Owns(path) {
		b.opts.Logf("Skipping %s: already in catalog", filename)
		return nil
	}

	path, err := b.correctName(path)
	if err != nil {
		return err
	}

	in, err := ParseFile(path)
	if err != nil {
		return err
	}

	if !camelot.Valid(in.Key) {
		b.opts.Logf("Key %q of %s is not Camelot notation", in.Key, filename)
	}

	// Normalize the file's own name before it joins the catalog
	if in.SourcePath, err = b.syncPath(in.SourcePath, in.BaseName(), in.Extension); err != nil {
		return err
	}

	song, err := b.findSong(&in)
	if err != nil {
		return err
	}

	if song == nil {
		b.opts.Logf("New song: %s", in.SongName())
		b.collection.Songs = append(b.collection.Songs, newSong(&in))

		return nil
	}

	_, err = song.Append(b, &in)

	return err
}

// findSong returns the song the incoming file belongs to, or nil for a new song
func (b *Builder) findSong(in *ParsedFilename) (*Song, error) {
	var near []*Song

	for _, s := range b.collection.Songs {
		switch s.Match(in, b.opts.Matcher) {
		case Exact:
			return s, nil
		case Near:
			near = append(near, s)
		}
	}

	if len(near) == 0 {
		return nil, nil
	}

	if len(near) == 1 && b.opts.AutoAcceptSingleSong {
		b.opts.Logf("Accepting near match %q for %q", near[0].CanonicalName(), in.SongName())
		return near[0], nil
	}

	options := []string{noMatchOption}
	for _, s := range near {
		options = append(options, s.CanonicalName())
	}

	idx, err := b.choose(options, fmt.Sprintf("Pick a match for %q", in.SongName()), true)
	if err != nil || idx == 0 {
		return nil, err
	}

	return near[idx-1], nil
}

// choose wraps Prompter.Choose with a range check on the answer
func (b *Builder) choose(options []string, prompt string, autoSelectSingle bool) (int, error) {
	idx, err := b.prompt.Choose(options, prompt, autoSelectSingle)
	if err != nil {
		return 0, err
	}

	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("choice %d out of range for %d options", idx, len(options))
	}

	return idx, nil
}
