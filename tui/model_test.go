// ABOUTME: Unit tests for the prompt models and prompter fallbacks
// ABOUTME: Drives Update() with key messages the way Bubble Tea would

package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlCKey = tea.KeyMsg{Type: tea.KeyCtrlC}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// press feeds keys to m and returns the resulting model
//
//nolint:ireturn // test helper mirrors tea.Model
func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}

	return m
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name        string
		def         bool
		key         tea.KeyMsg
		wantAnswer  bool
		wantAborted bool
	}{
		{"yes", false, runeKey('y'), true, false},
		{"upper yes", false, runeKey('Y'), true, false},
		{"no", true, runeKey('n'), false, false},
		{"enter takes default yes", true, enterKey, true, false},
		{"enter takes default no", false, enterKey, false, false},
		{"escape aborts", true, escKey, false, true},
		{"ctrl+c aborts", true, ctrlCKey, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := newConfirmModel("Rename?", tt.def).Update(tt.key)
			got := m.(confirmModel)

			if !got.done {
				t.Fatal("expected prompt to be answered")
			}

			if cmd == nil {
				t.Error("expected quit command")
			}

			if got.answer != tt.wantAnswer || got.aborted != tt.wantAborted {
				t.Errorf("answer=%v aborted=%v, want %v %v", got.answer, got.aborted, tt.wantAnswer, tt.wantAborted)
			}
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	m := press(newConfirmModel("Rename?", true), runeKey('x'), tea.WindowSizeMsg{Width: 80, Height: 24}).(confirmModel)

	if m.done {
		t.Error("unrelated input should not answer the prompt")
	}
}

func TestConfirmModelView(t *testing.T) {
	if v := newConfirmModel("Rename?", true).View(); !strings.Contains(v, "[Y/n]") {
		t.Errorf("default yes hint missing: %q", v)
	}

	if v := newConfirmModel("Rename?", false).View(); !strings.Contains(v, "[y/N]") {
		t.Errorf("default no hint missing: %q", v)
	}
}

func TestChooseModelNavigation(t *testing.T) {
	options := []string{"No matches", "Artist - Song", "Artist - Song (Remix)"}

	tests := []struct {
		name string
		keys []tea.Msg
		want int
	}{
		{"enter picks first", []tea.Msg{enterKey}, 0},
		{"down", []tea.Msg{downKey, enterKey}, 1},
		{"vim down twice", []tea.Msg{runeKey('j'), runeKey('j'), enterKey}, 2},
		{"down stops at end", []tea.Msg{downKey, downKey, downKey, downKey, enterKey}, 2},
		{"up stops at start", []tea.Msg{upKey, enterKey}, 0},
		{"end then up", []tea.Msg{runeKey('G'), upKey, enterKey}, 1},
		{"home", []tea.Msg{runeKey('G'), runeKey('g'), enterKey}, 0},
		{"digit jump", []tea.Msg{runeKey('3'), enterKey}, 2},
		{"digit out of range ignored", []tea.Msg{runeKey('9'), enterKey}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newChooseModel(options, "Pick"), tt.keys...).(chooseModel)

			if !m.done || m.aborted {
				t.Fatalf("done=%v aborted=%v", m.done, m.aborted)
			}

			if m.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.want)
			}
		})
	}
}

func TestChooseModelAbort(t *testing.T) {
	m := press(newChooseModel([]string{"a", "b"}, "Pick"), downKey, escKey).(chooseModel)

	if !m.aborted {
		t.Error("expected abort")
	}
}

func TestChooseModelView(t *testing.T) {
	m := press(newChooseModel([]string{"No matches", "Artist - Song"}, "Pick a match"), downKey).(chooseModel)
	v := m.View()

	for _, want := range []string{"Pick a match", " 1. No matches", "► ", " 2. Artist - Song"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestTextModel(t *testing.T) {
	m := press(newTextModel("New name"), runeKey('8'), runeKey('A'), enterKey).(textModel)

	if !m.done || m.aborted {
		t.Fatalf("done=%v aborted=%v", m.done, m.aborted)
	}

	if m.value != "8A" {
		t.Errorf("value = %q, want 8A", m.value)
	}
}

func TestTextModelAbort(t *testing.T) {
	m := press(newTextModel("New name"), runeKey('x'), ctrlCKey).(textModel)

	if !m.aborted {
		t.Error("expected abort")
	}
}

type fakePlayer struct {
	opened []string
	err    error
}

func (f *fakePlayer) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func TestChooseAutoSelectSingle(t *testing.T) {
	p := New(Options{Out: &bytes.Buffer{}})

	idx, err := p.Choose([]string{"only"}, "Pick", true)
	if err != nil || idx != 0 {
		t.Errorf("Choose() = %d, %v; want 0, nil", idx, err)
	}
}

func TestChooseEmpty(t *testing.T) {
	p := New(Options{Out: &bytes.Buffer{}})

	if _, err := p.Choose(nil, "Pick", true); err == nil {
		t.Error("expected error for empty options")
	}
}

func TestPreview(t *testing.T) {
	var out bytes.Buffer
	player := &fakePlayer{}
	p := New(Options{Out: &out, Player: player})

	p.Preview("a.mp3")

	if len(player.opened) != 1 || player.opened[0] != "a.mp3" {
		t.Errorf("opened = %v", player.opened)
	}

	player.err = errors.New("no player")
	p.Preview("b.mp3")

	if !strings.Contains(out.String(), "Warning: could not preview b.mp3") {
		t.Errorf("missing warning, got %q", out.String())
	}
}

func TestPreviewWithoutPlayer(t *testing.T) {
	var out bytes.Buffer
	New(Options{Out: &out}).Preview("a.mp3")

	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
