// ABOUTME: Reads musical key annotations embedded in audio file tags
// ABOUTME: Used for key hints during key mismatches and for the tag audit

// Package audiotag extracts the musical key stored in an audio file's tags,
// so it can be compared with the key annotated in the filename.
package audiotag

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dhowden/tag"

	"song-catalog/camelot"
)

// Raw tag names holding a key, across ID3 frames and Vorbis comments
var keyTags = []string{"TKEY", "TKE", "initialkey", "INITIALKEY", "key", "KEY"}

// Mixed In Key style comment, e.g. "8A - Energy 6"
var commentKeyRegex = regexp.MustCompile(`(\d+[AB])\s*-\s*Energy`)

// ReadKey returns the key stored in the file's tags, normalized to Camelot
// notation when possible. An empty key with nil error means no key tag.
func ReadKey(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return "", fmt.Errorf("failed to read metadata: %w", err)
	}

	if raw := metadata.Raw(); raw != nil {
		for _, name := range keyTags {
			if key := rawString(raw[name]); key != "" {
				return camelot.Normalize(key), nil
			}
		}
	}

	return extractKey(metadata.Comment()), nil
}

// Hint returns the tagged key or "" when it cannot be read
func Hint(path string) string {
	key, err := ReadKey(path)
	if err != nil {
		return ""
	}

	return key
}

// extractKey extracts a Camelot key from a comment string
func extractKey(comment string) string {
	matches := commentKeyRegex.FindStringSubmatch(comment)
	if len(matches) > 1 {
		return camelot.Normalize(matches[1])
	}

	return ""
}

func rawString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []string:
		if len(val) > 0 {
			return strings.TrimSpace(val[0])
		}
	case *tag.Comm:
		return strings.TrimSpace(val.Text)
	}

	return ""
}
