// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

// Previewer opens an audio file in an external player
type Previewer interface {
	Open(path string) error
}

// Logger provides debug logging capability
type Logger interface {
	Debugf(format string, args ...interface{})
}
