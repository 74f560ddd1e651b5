// ABOUTME: Launches an external audio player so the user can audition a file
// ABOUTME: Uses the configured command or the operating system's default opener

// Package preview opens audio files in an external player without waiting for it.
package preview

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoOpener is returned when no player is configured and the platform has no default opener
var ErrNoOpener = errors.New("no preview command for this platform")

// Player starts audio previews
type Player struct {
	Command string // Custom player command line; the file path is appended
	GOOS    string // Platform used to pick the default opener; empty means runtime.GOOS

	start func(*exec.Cmd) error
}

// New returns a Player using command, or the OS default opener when command is empty
func New(command string) *Player {
	return &Player{Command: command, GOOS: runtime.GOOS}
}

// Args returns the program and arguments used to open path
func (p *Player) Args(path string) (string, []string, error) {
	if fields := strings.Fields(p.Command); len(fields) > 0 {
		return fields[0], append(fields[1:], path), nil
	}

	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNoOpener, goos)
	}
}

// Open starts the player for path and returns without waiting for it to exit
func (p *Player) Open(path string) error {
	name, args, err := p.Args(path)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)

	start := p.start
	if start == nil {
		start = startDetached
	}

	if err := start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the child in the background so it doesn't linger as a zombie
	go func() { _ = cmd.Wait() }()

	return nil
}
