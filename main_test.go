// ABOUTME: Tests for command-line parsing
// ABOUTME: Exercises the config subcommand and argument validation

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"song-catalog/config"
)

func TestConfigCommandPrintsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song-catalog.toml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--config", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if strings.TrimSpace(out.String()) != path {
		t.Errorf("output = %q, want %q", out.String(), path)
	}
}

func TestConfigCommandInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "song-catalog.toml")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--init", "--config", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.NearThreshold != config.DefaultConfig().NearThreshold {
		t.Errorf("written config = %+v", cfg)
	}

	// A second init must not clobber the file
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--init", "--config", path})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestRootCommandRejectsSeveralDirectories(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{t.TempDir(), t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for two directories")
	}
}
