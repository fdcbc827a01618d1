package leveling

import (
	"errors"
	"math"
	"testing"
)

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 505},
		{6, 757},
	}

	for _, tt := range tests {
		got, err := XPForLevel(tt.level)
		if err != nil {
			t.Fatalf("XPForLevel(%d): %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPForLevel_Recurrence(t *testing.T) {
	for level := 1; level < 60; level++ {
		cur, err := XPForLevel(level)
		if err != nil {
			t.Fatalf("XPForLevel(%d): %v", level, err)
		}
		next, err := XPForLevel(level + 1)
		if err != nil {
			t.Fatalf("XPForLevel(%d): %v", level+1, err)
		}
		want := int(math.Floor(float64(cur) * 1.5))
		if next != want {
			t.Errorf("XPForLevel(%d) = %d, want floor(%d × 1.5) = %d", level+1, next, cur, want)
		}
	}
}

func TestXPForLevel_Saturates(t *testing.T) {
	got, err := XPForLevel(10_000)
	if err != nil {
		t.Fatalf("XPForLevel: %v", err)
	}
	if got != math.MaxInt {
		t.Errorf("XPForLevel(10000) = %d, want saturation at MaxInt", got)
	}
}

func TestXPForLevel_InvalidLevel(t *testing.T) {
	for _, level := range []int{0, -1} {
		if _, err := XPForLevel(level); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("XPForLevel(%d) error = %v, want ErrInvalidInput", level, err)
		}
	}
}

func TestFromTotal(t *testing.T) {
	tests := []struct {
		total int
		want  LevelInfo
	}{
		{0, LevelInfo{Level: 1, CurrentXP: 0, XPForNextLevel: 100, ProgressPercent: 0}},
		{1, LevelInfo{Level: 1, CurrentXP: 1, XPForNextLevel: 100, ProgressPercent: 1}},
		{99, LevelInfo{Level: 1, CurrentXP: 99, XPForNextLevel: 100, ProgressPercent: 99}},
		{100, LevelInfo{Level: 2, CurrentXP: 0, XPForNextLevel: 150, ProgressPercent: 0}},
		{175, LevelInfo{Level: 2, CurrentXP: 75, XPForNextLevel: 150, ProgressPercent: 50}},
		{250, LevelInfo{Level: 3, CurrentXP: 0, XPForNextLevel: 225, ProgressPercent: 0}},
		{300, LevelInfo{Level: 3, CurrentXP: 50, XPForNextLevel: 225, ProgressPercent: 22}},
		{475, LevelInfo{Level: 4, CurrentXP: 0, XPForNextLevel: 337, ProgressPercent: 0}},
	}

	for _, tt := range tests {
		got, err := FromTotal(tt.total)
		if err != nil {
			t.Fatalf("FromTotal(%d): %v", tt.total, err)
		}
		if got != tt.want {
			t.Errorf("FromTotal(%d) = %+v, want %+v", tt.total, got, tt.want)
		}
	}
}

func TestFromTotal_RemainderBelowThreshold(t *testing.T) {
	totals := []int{0, 1, 99, 100, 101, 249, 250, 1_000, 12_345, 1_000_000, math.MaxInt32, math.MaxInt}
	for _, total := range totals {
		info, err := FromTotal(total)
		if err != nil {
			t.Fatalf("FromTotal(%d): %v", total, err)
		}
		if info.CurrentXP < 0 || info.CurrentXP >= info.XPForNextLevel {
			t.Errorf("FromTotal(%d): CurrentXP %d outside [0, %d)", total, info.CurrentXP, info.XPForNextLevel)
		}
		if info.ProgressPercent < 0 || info.ProgressPercent > 100 {
			t.Errorf("FromTotal(%d): ProgressPercent %d outside [0, 100]", total, info.ProgressPercent)
		}
		if info.Level < 1 {
			t.Errorf("FromTotal(%d): Level %d below 1", total, info.Level)
		}
	}
}

func TestFromTotal_Idempotent(t *testing.T) {
	a, errA := FromTotal(4242)
	b, errB := FromTotal(4242)
	if errA != nil || errB != nil {
		t.Fatalf("FromTotal errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("FromTotal not deterministic: %+v vs %+v", a, b)
	}
}

func TestFromTotal_Negative(t *testing.T) {
	_, err := FromTotal(-1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FromTotal(-1) error = %v, want ErrInvalidInput", err)
	}
}

func TestFromTotal_MatchesTotalForLevel(t *testing.T) {
	for level := 1; level <= 30; level++ {
		total, err := TotalForLevel(level)
		if err != nil {
			t.Fatalf("TotalForLevel(%d): %v", level, err)
		}
		info, err := FromTotal(total)
		if err != nil {
			t.Fatalf("FromTotal(%d): %v", total, err)
		}
		if info.Level != level || info.CurrentXP != 0 {
			t.Errorf("FromTotal(TotalForLevel(%d)) = %+v, want level %d with 0 XP", level, info, level)
		}
		if level > 1 {
			below, _ := FromTotal(total - 1)
			if below.Level != level-1 {
				t.Errorf("FromTotal(%d) level = %d, want %d", total-1, below.Level, level-1)
			}
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	info, _ := FromTotal(175)
	if got := info.XPToNextLevel(); got != 75 {
		t.Errorf("XPToNextLevel = %d, want 75", got)
	}
}

func TestLevelUps(t *testing.T) {
	tests := []struct {
		before, after int
		want          []int
	}{
		{0, 50, nil},
		{90, 100, []int{2}},
		{0, 475, []int{2, 3, 4}},
		{175, 175, nil},
	}

	for _, tt := range tests {
		got, err := LevelUps(tt.before, tt.after)
		if err != nil {
			t.Fatalf("LevelUps(%d, %d): %v", tt.before, tt.after, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("LevelUps(%d, %d) = %v, want %v", tt.before, tt.after, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LevelUps(%d, %d) = %v, want %v", tt.before, tt.after, got, tt.want)
			}
		}
	}
}
