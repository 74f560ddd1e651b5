// ABOUTME: Event handling for the prompt models
// ABOUTME: Implements the Bubble Tea Update() functions for key presses

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles a key press on the yes/no question
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Abort):
		m.aborted = true
	case key.Matches(keyMsg, keys.Yes):
		m.answer = true
	case key.Matches(keyMsg, keys.No):
		m.answer = false
	case key.Matches(keyMsg, keys.Select):
		m.answer = m.def
	default:
		return m, nil
	}

	m.done = true

	return m, tea.Quit
}

// Update moves the cursor or picks the highlighted option
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Abort):
		m.aborted = true
		m.done = true

		return m, tea.Quit

	case key.Matches(keyMsg, keys.Select):
		m.done = true

		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.Home):
		m.cursor = 0

	case key.Matches(keyMsg, keys.End):
		m.cursor = len(m.options) - 1

	default:
		// Digits jump straight to an option
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(m.options) {
				m.cursor = idx
			}
		}
	}

	return m, nil
}

// Update feeds keys into the text input until enter is pressed
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Abort):
			m.aborted = true
			m.done = true

			return m, tea.Quit

		case key.Matches(keyMsg, keys.Select):
			m.value = m.input.Value()
			m.done = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}
