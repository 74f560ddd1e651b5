// ABOUTME: Rendering functions for the prompt models
// ABOUTME: Implements the Bubble Tea View() functions and help lines

package tui

import (
	"fmt"
	"strings"
)

// View renders the yes/no question with its default marked
func (m confirmModel) View() string {
	if m.done {
		if m.aborted {
			return promptStyle.Render(m.prompt) + " aborted\n"
		}

		return promptStyle.Render(m.prompt) + " " + answerStyle.Render(yesNo(m.answer)) + "\n"
	}

	hint := "[y/N]"
	if m.def {
		hint = "[Y/n]"
	}

	return promptStyle.Render(m.prompt) + " " + helpStyle.Render(hint) + " "
}

// View renders the option list with the cursor row highlighted
func (m chooseModel) View() string {
	if m.done {
		if m.aborted {
			return promptStyle.Render(m.prompt) + " aborted\n"
		}

		return promptStyle.Render(m.prompt) + " " + answerStyle.Render(m.options[m.cursor]) + "\n"
	}

	var b strings.Builder

	b.WriteString(promptStyle.Render(m.prompt) + "\n\n")

	for i, option := range m.options {
		// Fixed width numbering keeps options aligned past nine entries
		line := fmt.Sprintf("%2d. %s", i+1, option)

		if i == m.cursor {
			b.WriteString(selectedOptionStyle.Render("► "+line) + "\n")
		} else {
			b.WriteString(optionStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + m.renderHelp() + "\n")

	return b.String()
}

// renderHelp lists the list navigation keys
func (m chooseModel) renderHelp() string {
	parts := make([]string, 0, 4)
	for _, binding := range []struct{ key, desc string }{
		{keys.Up.Help().Key + " " + keys.Down.Help().Key, "move"},
		{"1-9", "jump"},
		{keys.Select.Help().Key, keys.Select.Help().Desc},
		{keys.Abort.Help().Key, keys.Abort.Help().Desc},
	} {
		parts = append(parts, binding.key+": "+binding.desc)
	}

	return helpStyle.Render(strings.Join(parts, " • "))
}

// View renders the question above the text input
func (m textModel) View() string {
	if m.done {
		if m.aborted {
			return promptStyle.Render(m.prompt) + " aborted\n"
		}

		return promptStyle.Render(m.prompt) + " " + answerStyle.Render(m.value) + "\n"
	}

	return promptStyle.Render(m.prompt) + "\n" + m.input.View() + "\n"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
