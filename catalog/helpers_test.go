// ABOUTME: Scripted prompter and filesystem helpers shared by catalog tests
// ABOUTME: Each answer must be consumed by a prompt of the expected kind

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const (
	kindConfirm = "confirm"
	kindChoose  = "choose"
	kindText    = "text"
)

// step is one scripted answer
type step struct {
	kind   string
	yes    bool
	choice int
	text   string
}

func confirm(yes bool) step {
	return step{kind: kindConfirm, yes: yes}
}

func choose(idx int) step {
	return step{kind: kindChoose, choice: idx}
}

func text(s string) step {
	return step{kind: kindText, text: s}
}

// scriptedPrompter answers prompts from a fixed script and records what was asked
type scriptedPrompter struct {
	t        *testing.T
	steps    []step
	prompts  []string
	options  [][]string
	previews []string
}

func newScript(t *testing.T, steps ...step) *scriptedPrompter {
	return &scriptedPrompter{t: t, steps: steps}
}

func (p *scriptedPrompter) next(kind, prompt string) step {
	p.t.Helper()

	p.prompts = append(p.prompts, prompt)

	if len(p.steps) == 0 {
		p.t.Fatalf("unexpected %s prompt: %q", kind, prompt)
	}

	s := p.steps[0]
	p.steps = p.steps[1:]

	if s.kind != kind {
		p.t.Fatalf("got %s prompt %q, script expected %s", kind, prompt, s.kind)
	}

	return s
}

func (p *scriptedPrompter) Confirm(prompt string, _ bool) (bool, error) {
	return p.next(kindConfirm, prompt).yes, nil
}

func (p *scriptedPrompter) Choose(options []string, prompt string, autoSelectSingle bool) (int, error) {
	if autoSelectSingle && len(options) == 1 {
		return 0, nil
	}

	p.options = append(p.options, options)

	return p.next(kindChoose, prompt).choice, nil
}

func (p *scriptedPrompter) RequestText(prompt string) (string, error) {
	return p.next(kindText, prompt).text, nil
}

func (p *scriptedPrompter) Preview(path string) {
	p.previews = append(p.previews, path)
}

// finish fails the test if scripted answers were left over
func (p *scriptedPrompter) finish() {
	p.t.Helper()

	if len(p.steps) > 0 {
		p.t.Errorf("%d scripted answers unused: %+v", len(p.steps), p.steps)
	}
}

// touch creates empty files in dir
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// listDir returns the sorted file names in dir
func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names
}

// analyse creates the files in a temp dir and runs a builder over them
func analyse(t *testing.T, p Prompter, opts Options, names ...string) (*Collection, string, error) {
	t.Helper()

	dir := t.TempDir()
	touch(t, dir, names...)

	opts.Dir = dir
	b := NewBuilder(opts, p)

	c, err := b.Analyse(context.Background(), names)

	return c, dir, err
}
