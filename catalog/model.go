// ABOUTME: Catalog model: songs own editions, editions own file variants
// ABOUTME: Canonical names are derived from the model, never stored

// Package catalog builds a deduplicated catalog of songs from a directory of
// audio files named "Key - Artists - Title (Version) [Notes].ext".
//
// A Song is identified by its artists and title and holds one or more
// Editions (remixes, edits, alternate versions) identified by version and
// notes. Each Edition holds the FileVariants carrying its audio, one per file
// type. Files are matched exactly or approximately (see Matcher); ambiguous
// matches are resolved through a Prompter, and every change to the model is
// written back to disk by renaming files to their canonical names.
package catalog

import (
	"path/filepath"
	"strings"
)

// noMatchOption is the sentinel first option of every match picker
const noMatchOption = "No matches"

// Record is the contract shared by songs and editions
type Record interface {
	// Match classifies how the incoming file's identity fields compare to the record's
	Match(in *ParsedFilename, m Matcher) Match
	// Append merges the incoming file into the record; false means it was not merged
	Append(b *Builder, in *ParsedFilename) (bool, error)
	// CanonicalName renders the record's name in the filename grammar
	CanonicalName() string
}

var (
	_ Record = (*Song)(nil)
	_ Record = (*Edition)(nil)
)

// FileVariant is one physical file of an edition
type FileVariant struct {
	Extension string // e.g. ".flac"
	Path      string // Current path on disk
}

// Edition is a version of a song, possibly available in several file types
type Edition struct {
	Key      string
	Version  string
	Notes    string
	Variants []*FileVariant

	song *Song
}

// Song groups the editions sharing artists and title
type Song struct {
	Artists  string
	Title    string
	Editions []*Edition
}

// Collection is the catalog built during one run
type Collection struct {
	Songs []*Song
}

// Stats summarizes the size of a collection
type Stats struct {
	Songs    int
	Editions int
	Variants int
}

func newSong(in *ParsedFilename) *Song {
	s := &Song{Artists: in.Artists, Title: in.Title}
	s.Editions = []*Edition{newEdition(s, in)}

	return s
}

func newEdition(s *Song, in *ParsedFilename) *Edition {
	return &Edition{
		Key:      in.Key,
		Version:  in.Version,
		Notes:    in.Notes,
		Variants: []*FileVariant{{Extension: in.Extension, Path: in.SourcePath}},
		song:     s,
	}
}

// Song returns the song this edition belongs to
func (e *Edition) Song() *Song {
	return e.song
}

// CanonicalName returns the base name every variant of the edition should carry
func (e *Edition) CanonicalName() string {
	return CanonicalName(e.Key, e.song.Artists, e.song.Title, e.Version, e.Notes)
}

// Label identifies the edition among its siblings in a picker
func (e *Edition) Label() string {
	label := e.Version
	if label == "" {
		label = "Original Mix"
	}

	if e.Notes != "" {
		label += " [" + e.Notes + "]"
	}

	return label + " (" + e.Key + ")"
}

// Preferred returns the variant with the first extension found in exts,
// falling back to the first variant
func (e *Edition) Preferred(exts []string) *FileVariant {
	for _, ext := range exts {
		for _, v := range e.Variants {
			if strings.EqualFold(v.Extension, ext) {
				return v
			}
		}
	}

	if len(e.Variants) == 0 {
		return nil
	}

	return e.Variants[0]
}

// CanonicalName returns "Artists - Title"
func (s *Song) CanonicalName() string {
	return s.Artists + separator + s.Title
}

// Editions returns every edition in catalog order
func (c *Collection) Editions() []*Edition {
	var editions []*Edition
	for _, s := range c.Songs {
		editions = append(editions, s.Editions...)
	}

	return editions
}

// Owns reports whether path is already a variant in the collection
func (c *Collection) Owns(path string) bool {
	path = filepath.Clean(path)

	for _, e := range c.Editions() {
		for _, v := range e.Variants {
			if filepath.Clean(v.Path) == path {
				return true
			}
		}
	}

	return false
}

// Stats counts songs, editions and variants
func (c *Collection) Stats() Stats {
	st := Stats{Songs: len(c.Songs)}
	for _, e := range c.Editions() {
		st.Editions++
		st.Variants += len(e.Variants)
	}

	return st
}
