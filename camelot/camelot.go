// ABOUTME: Camelot wheel key notation used in filename key annotations
// ABOUTME: Parses keys like "8A" and describes how two keys relate on the wheel

// Package camelot parses Camelot wheel key annotations ("8A", "11B") and
// describes the harmonic relation between two keys. The catalog only treats a
// key as opaque text; this package is used to give the user context when two
// files of the same edition disagree on their key.
package camelot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Key represents a parsed Camelot key
type Key struct {
	Letter string // "A" (minor) or "B" (major)
	Number int    // 1-12
}

// Leading zeros and lower case letters show up in tags written by some tools ("08a")
var keyRegex = regexp.MustCompile(`^0?(\d{1,2})([ABab])$`)

// Parse parses a Camelot key string like "8A" into structured form
func Parse(key string) (Key, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Key{}, fmt.Errorf("empty key")
	}

	matches := keyRegex.FindStringSubmatch(key)
	if len(matches) != 3 {
		return Key{}, fmt.Errorf("invalid key format: %s", key)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil || number < 1 || number > 12 {
		return Key{}, fmt.Errorf("invalid key number: %s", matches[1])
	}

	return Key{
		Letter: strings.ToUpper(matches[2]),
		Number: number,
	}, nil
}

// Valid reports whether key is in Camelot notation
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// Normalize returns the canonical spelling of a Camelot key ("08a" -> "8A").
// Keys that do not parse are returned trimmed but otherwise untouched.
func Normalize(key string) string {
	k, err := Parse(key)
	if err != nil {
		return strings.TrimSpace(key)
	}

	return k.String()
}

// String returns the string representation of a Key
func (k Key) String() string {
	return fmt.Sprintf("%d%s", k.Number, k.Letter)
}

// Distance calculates the number of steps between two keys on the wheel.
// Switching between minor and major of the same number counts as one step.
func Distance(k1, k2 Key) int {
	diff := k1.Number - k2.Number
	if diff < 0 {
		diff = -diff
	}

	dist := min(diff, 12-diff)
	if k1.Letter != k2.Letter {
		dist++
	}

	return dist
}

// Relation describes how key b relates to key a in words, for prompts.
// Returns an empty string when either key is not Camelot notation.
func Relation(a, b string) string {
	k1, err1 := Parse(a)
	k2, err2 := Parse(b)

	if err1 != nil || err2 != nil {
		return ""
	}

	switch dist := Distance(k1, k2); {
	case dist == 0:
		return "same key"
	case k1.Number == k2.Number:
		return "relative major/minor"
	case dist == 1:
		return "adjacent on the wheel"
	default:
		return fmt.Sprintf("%d steps apart", dist)
	}
}
