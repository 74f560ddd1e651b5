// ABOUTME: Exports the catalog as an M3U8 playlist, one file per edition
// ABOUTME: Picks the preferred file type of each edition and backs up existing playlists

// Package playlist writes M3U8 playlists of the catalog. Each edition
// contributes one entry: its variant in the first preferred file type, or its
// first variant when none of the preferred types exist.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"song-catalog/catalog"
)

// Entry is one line of the playlist
type Entry struct {
	Title string // Shown in the #EXTINF line
	Path  string // Relative to the playlist when possible
}

// Entries lists the preferred variant of every edition in catalog order.
// Paths are made relative to the directory of playlistPath when possible.
func Entries(c *catalog.Collection, preferred []string, playlistPath string) []Entry {
	base, err := filepath.Abs(filepath.Dir(playlistPath))
	if err != nil {
		base = ""
	}

	var entries []Entry

	for _, e := range c.Editions() {
		v := e.Preferred(preferred)
		if v == nil {
			continue
		}

		entries = append(entries, Entry{
			Title: e.CanonicalName(),
			Path:  relativeTo(base, v.Path),
		})
	}

	return entries
}

func relativeTo(base, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil || base == "" {
		return path
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return abs
	}

	return filepath.ToSlash(rel)
}

// Write writes entries to an extended M3U8 playlist.
// Creates a backup (.bak) of the existing file before overwriting.
func Write(path string, entries []Entry) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		backupPath := path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close playlist file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)

	if _, err := writer.WriteString("#EXTM3U\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(writer, "#EXTINF:-1,%s\n%s\n", entry.Title, entry.Path); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	return nil
}
