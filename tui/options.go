// ABOUTME: Prompter configuration and injected collaborators
// ABOUTME: Defines the terminal streams, previewer and logger used by the prompts

package tui

import "io"

// Options contains configuration for the terminal prompter
type Options struct {
	In     io.Reader // Keyboard input; nil uses the terminal
	Out    io.Writer // Rendered prompts; nil uses stdout
	Player Previewer // Opens files for listening; nil disables previews
	Logger Logger    // Debug logging; nil is silent
}
