// ABOUTME: Lists the audio files of the catalog directory
// ABOUTME: Non-recursive, skips hidden files and anything the config doesn't call audio

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListAudioFiles returns the names of audio files directly inside dir, sorted
func ListAudioFiles(dir string, isAudio func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") || !isAudio(name) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}
