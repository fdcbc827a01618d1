package badges

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vidhya/vidhya/internal/rewards"
)

func sampleBadges() []rewards.Badge {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	first := rewards.FirstSteps("Intro")
	first.AwardedAt = at
	lvl2 := rewards.LevelUp(2)
	lvl2.AwardedAt = at
	lvl3 := rewards.LevelUp(3)
	lvl3.AwardedAt = at
	return []rewards.Badge{first, lvl2, lvl3}
}

func loaded(t *testing.T, all []rewards.Badge) *BadgesScreen {
	t.Helper()
	s := New(func(context.Context) ([]rewards.Badge, error) { return all, nil })
	s.Update(s.Init()())
	return s
}

func TestShowsTotalAndFirstTab(t *testing.T) {
	s := loaded(t, sampleBadges())
	v := s.View(120, 30)
	if !strings.Contains(v, "Total: 3 badges") {
		t.Error("missing total")
	}
	if s.SelectedType() != rewards.BadgeFirstSteps {
		t.Errorf("selected = %s, want first-steps", s.SelectedType())
	}
	if !strings.Contains(v, "Completed your first lesson: Intro") {
		t.Error("first steps badge not listed")
	}
}

func TestTabCyclesTypes(t *testing.T) {
	s := loaded(t, sampleBadges())
	types := rewards.AllBadgeTypes()

	for range len(types) - 1 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	if s.SelectedType() != rewards.BadgeLevelUp {
		t.Fatalf("selected = %s, want level-up", s.SelectedType())
	}
	v := s.View(120, 30)
	if !strings.Contains(v, "Reached level 2") || !strings.Contains(v, "Reached level 3") {
		t.Error("level badges not listed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.SelectedType() != rewards.BadgeFirstSteps {
		t.Errorf("tab should wrap around, got %s", s.SelectedType())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.SelectedType() != rewards.BadgeLevelUp {
		t.Errorf("shift+tab should wrap back, got %s", s.SelectedType())
	}
}

func TestEmptyType(t *testing.T) {
	s := loaded(t, sampleBadges())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !strings.Contains(s.View(120, 30), "No badges of this type yet") {
		t.Error("expected empty message for module badges")
	}
}
