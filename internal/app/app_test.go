package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/ui/layout"
)

type stubScreen struct {
	title string
	keys  []string
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub content" }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "s", Description: "Submit"}}
}

func TestViewComposesFrame(t *testing.T) {
	s := &stubScreen{title: "HTML Check"}
	m := NewAppModel(s, Options{Stats: layout.HeaderStats{Level: 3, XP: 40, Streak: 2}})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := updated.(AppModel).render()

	for _, want := range []string{"Vidhya", "HTML Check", "Lv 3", "2 day", "stub content", "Submit", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	m := NewAppModel(&stubScreen{}, Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	out := updated.(AppModel).render()
	if !strings.Contains(out, "too small") {
		t.Error("expected min size message")
	}
}

func TestKeysReachRootScreen(t *testing.T) {
	s := &stubScreen{}
	m := NewAppModel(s, Options{})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if len(s.keys) != 2 || s.keys[0] != "esc" || s.keys[1] != "s" {
		t.Errorf("keys = %v, want [esc s]", s.keys)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(&stubScreen{}, Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
