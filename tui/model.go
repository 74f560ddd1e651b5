// ABOUTME: Bubble Tea models for the confirm, choose and free text prompts
// ABOUTME: Holds key bindings, styles and the per-prompt state

// Package tui asks the user to settle catalog decisions in the terminal.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels a prompt
var ErrAborted = errors.New("prompt aborted")

// Key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Yes    key.Binding
	No     key.Binding
	Abort  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "abort"),
	),
}

// Styles
var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	optionStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true).
				Padding(0, 1)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// confirmModel asks a yes/no question
type confirmModel struct {
	prompt  string
	def     bool
	answer  bool
	done    bool
	aborted bool
}

func newConfirmModel(prompt string, def bool) confirmModel {
	return confirmModel{prompt: prompt, def: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

// chooseModel picks one entry from a list
type chooseModel struct {
	prompt  string
	options []string
	cursor  int
	done    bool
	aborted bool
}

func newChooseModel(options []string, prompt string) chooseModel {
	return chooseModel{prompt: prompt, options: options}
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

// textModel reads one line of free text
type textModel struct {
	prompt  string
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newTextModel(prompt string) textModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 255
	input.Focus()

	return textModel{prompt: prompt, input: input}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}
