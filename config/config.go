// ABOUTME: Configuration management for matching thresholds and scan behaviour
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"song-catalog/catalog"
)

// Config holds the settings of a catalog run
type Config struct {
	// Matching
	NearThreshold int    `toml:"near_threshold"` // Fields must score above this (0-100) to be near matches
	Metric        string `toml:"metric"`         // "indel", "levenshtein" or "jaro-winkler"

	// Prompting
	AutoAcceptSingleSongMatch bool `toml:"auto_accept_single_song_match"`
	PromptNewEdition          bool `toml:"prompt_new_edition"`

	// Files
	Extensions          []string `toml:"extensions"`           // Audio file types included in the scan
	PreferredExtensions []string `toml:"preferred_extensions"` // Playlist export preference order

	// External tools
	PreviewCommand string `toml:"preview_command"` // Player used to audition files; empty uses the OS default
	AuditWorkers   int    `toml:"audit_workers"`   // Tag audit concurrency; 0 uses one per CPU
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to $XDG_CONFIG_HOME/song-catalog/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./song-catalog.toml"); err == nil {
		return "./song-catalog.toml"
	}

	if xdg.ConfigHome == "" {
		return "./song-catalog.toml"
	}

	return filepath.Join(xdg.ConfigHome, "song-catalog", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist, returns default config. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		NearThreshold:             catalog.DefaultThreshold,
		Metric:                    string(catalog.MetricIndel),
		AutoAcceptSingleSongMatch: false,
		PromptNewEdition:          true,
		Extensions:                []string{".aif", ".aiff", ".flac", ".m4a", ".mp3", ".ogg", ".wav"},
		PreferredExtensions:       []string{".mp3", ".flac"},
		PreviewCommand:            "",
		AuditWorkers:              0,
	}
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.NearThreshold < 0 || c.NearThreshold > 100 {
		return fmt.Errorf("near_threshold must be between 0 and 100, got %d", c.NearThreshold)
	}

	if _, err := catalog.ParseMetric(c.Metric); err != nil {
		return err
	}

	for _, ext := range append(append([]string{}, c.Extensions...), c.PreferredExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	return nil
}

// Matcher returns the similarity matcher described by the config
func (c Config) Matcher() catalog.Matcher {
	metric, err := catalog.ParseMetric(c.Metric)
	if err != nil {
		metric = catalog.MetricIndel
	}

	return catalog.Matcher{Threshold: c.NearThreshold, Metric: metric}
}

// IsAudio reports whether filename has one of the configured extensions
func (c Config) IsAudio(filename string) bool {
	ext := filepath.Ext(filename)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}

	return false
}
