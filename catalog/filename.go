// ABOUTME: Filename grammar "Key - Artists - Title (Version) [Notes]"
// ABOUTME: Validates, parses and regenerates canonical base names

package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const separator = " - "

// Grammar violations, in the order they are checked
var (
	ErrSeparators      = errors.New(`name must have exactly three " - " separated parts`)
	ErrVersionGroups   = errors.New("more than one (version) group")
	ErrNotesGroups     = errors.New("more than one [notes] group")
	ErrNotesPosition   = errors.New("[notes] must end the name")
	ErrVersionPosition = errors.New("(version) must end the name or directly precede [notes]")
)

// Group delimiters
type brackets struct {
	open, close byte
}

var (
	versionBrackets = brackets{'(', ')'}
	notesBrackets   = brackets{'[', ']'}
)

// ParsedFilename is the structured form of a filename in the catalog grammar
type ParsedFilename struct {
	Key        string // Musical key annotation, e.g. "8A"
	Artists    string
	Title      string
	Version    string // Empty when the name has no (Version) group
	Notes      string // Empty when the name has no [Notes] group
	Extension  string // Verbatim, including the dot and its case
	SourcePath string // Current path of the file on disk
}

// BaseName returns the canonical name without extension
func (p *ParsedFilename) BaseName() string {
	return CanonicalName(p.Key, p.Artists, p.Title, p.Version, p.Notes)
}

// SongName returns "Artists - Title"
func (p *ParsedFilename) SongName() string {
	return p.Artists + separator + p.Title
}

// CanonicalName renders the grammar-compliant base name for the given fields
func CanonicalName(key, artists, title, version, notes string) string {
	name := key + separator + artists + separator + title
	if version != "" {
		name += " (" + version + ")"
	}

	if notes != "" {
		name += " [" + notes + "]"
	}

	return name
}

// groupSpans returns [start, end) of every top-level group in s, delimiters
// included. A group opens only after whitespace or '*', must not be empty,
// and closes at its balancing bracket, so "(Remix (Edit))" is one group.
func groupSpans(b brackets, s string) [][2]int {
	var spans [][2]int

	for i := 0; i < len(s); i++ {
		if s[i] != b.open || !opensGroup(s[:i]) {
			continue
		}

		end := closingBracket(b, s, i)
		if end < 0 || end == i+1 {
			continue
		}

		spans = append(spans, [2]int{i, end + 1})
		i = end
	}

	return spans
}

// opensGroup reports whether a bracket following prefix may start a group
func opensGroup(prefix string) bool {
	r, size := utf8.DecodeLastRuneInString(prefix)
	if size == 0 {
		return false
	}

	return r == '*' || unicode.IsSpace(r)
}

// closingBracket returns the index of the bracket balancing s[start], or -1
func closingBracket(b brackets, s string, start int) int {
	depth := 0

	for j := start; j < len(s); j++ {
		switch s[j] {
		case b.open:
			depth++
		case b.close:
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

// CheckName validates a base name (without extension) and reports the first violation
func CheckName(name string) error {
	parts := strings.Split(name, separator)
	if len(parts) != 3 {
		return ErrSeparators
	}

	info := parts[2]

	versions := groupSpans(versionBrackets, info)
	if len(versions) > 1 {
		return ErrVersionGroups
	}

	notes := groupSpans(notesBrackets, info)
	if len(notes) > 1 {
		return ErrNotesGroups
	}

	if len(notes) == 1 && notes[0][1] != len(info) {
		return ErrNotesPosition
	}

	if len(versions) == 1 {
		if len(notes) == 1 && versions[0][1] != notes[0][0]-1 {
			return ErrVersionPosition
		}

		if len(notes) == 0 && versions[0][1] != len(info) {
			return ErrVersionPosition
		}
	}

	return nil
}

// Validate reports whether name is a well-formed base name
func Validate(name string) bool {
	return CheckName(name) == nil
}

// Parse splits a well-formed base name into its fields
func Parse(name string) (ParsedFilename, error) {
	if err := CheckName(name); err != nil {
		return ParsedFilename{}, err
	}

	parts := strings.Split(name, separator)
	info := parts[2]

	var version, notes string

	if spans := groupSpans(versionBrackets, info); len(spans) > 0 {
		s := spans[0]
		version = info[s[0]+1 : s[1]-1]
		info = info[:s[0]] + info[s[1]:]
	}

	if spans := groupSpans(notesBrackets, info); len(spans) > 0 {
		s := spans[0]
		notes = info[s[0]+1 : s[1]-1]
		info = info[:s[0]] + info[s[1]:]
	}

	return ParsedFilename{
		Key:     clean(parts[0]),
		Artists: clean(parts[1]),
		Title:   clean(info),
		Version: clean(version),
		Notes:   clean(notes),
	}, nil
}

// ParseFile parses the file at path; the extension is kept verbatim
func ParseFile(path string) (ParsedFilename, error) {
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)

	parsed, err := Parse(strings.TrimSuffix(filename, ext))
	if err != nil {
		return ParsedFilename{}, err
	}

	parsed.Extension = ext
	parsed.SourcePath = path

	return parsed, nil
}

// clean trims whitespace and composes characters so names read from NFD
// filesystems compare equal to typed ones
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
