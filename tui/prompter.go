// ABOUTME: Terminal implementation of the catalog's interactive decisions
// ABOUTME: Runs one short-lived Bubble Tea program per question

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter answers catalog questions through the terminal
type Prompter struct {
	in     io.Reader
	out    io.Writer
	player Previewer
	logger Logger
}

// New creates a terminal prompter
func New(opts Options) *Prompter {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Prompter{
		in:     opts.In,
		out:    out,
		player: opts.Player,
		logger: opts.Logger,
	}
}

func (p *Prompter) debugf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}

// run shows m until it quits and returns the final model
//
//nolint:ireturn // returns whichever prompt model was run
func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithOutput(p.out)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrAborted
		}

		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	return final, nil
}

// Confirm asks a yes/no question; enter takes def
func (p *Prompter) Confirm(prompt string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(prompt, def))
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok || m.aborted || !m.done {
		return false, ErrAborted
	}

	p.debugf("[TUI] %q -> %v", prompt, m.answer)

	return m.answer, nil
}

// Choose shows options as a list and returns the picked index
func (p *Prompter) Choose(options []string, prompt string, autoSelectSingle bool) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to choose from")
	}

	if autoSelectSingle && len(options) == 1 {
		p.debugf("[TUI] %q -> auto-selected %q", prompt, options[0])
		return 0, nil
	}

	final, err := p.run(newChooseModel(options, prompt))
	if err != nil {
		return 0, err
	}

	m, ok := final.(chooseModel)
	if !ok || m.aborted || !m.done {
		return 0, ErrAborted
	}

	p.debugf("[TUI] %q -> %d (%q)", prompt, m.cursor, options[m.cursor])

	return m.cursor, nil
}

// RequestText asks for a line of free text
func (p *Prompter) RequestText(prompt string) (string, error) {
	final, err := p.run(newTextModel(prompt))
	if err != nil {
		return "", err
	}

	m, ok := final.(textModel)
	if !ok || m.aborted || !m.done {
		return "", ErrAborted
	}

	return m.value, nil
}

// Preview opens path in the configured player; failures only produce a warning
func (p *Prompter) Preview(path string) {
	if p.player == nil {
		return
	}

	if err := p.player.Open(path); err != nil {
		p.debugf("[TUI] preview of %s failed: %v", path, err)
		fmt.Fprintf(p.out, "Warning: could not preview %s: %v\n", path, err)
	}
}
