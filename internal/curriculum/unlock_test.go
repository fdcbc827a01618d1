package curriculum

import (
	"errors"
	"testing"
)

// twoByTwo is a curriculum of 2 modules × 2 lessons.
func twoByTwo() Curriculum {
	return Curriculum{
		ID:    "c1",
		Title: "Two by Two",
		Modules: []Module{
			{ID: "m0", Lessons: []Lesson{{ID: "l00", Type: TypeVideo}, {ID: "l01", Type: TypeText}}},
			{ID: "m1", Lessons: []Lesson{{ID: "l10", Type: TypeQuiz}, {ID: "l11", Type: TypeInteractive}}},
		},
	}
}

// lockGrid flattens lock flags as [module][lesson].
func lockGrid(p Progress) [][]bool {
	grid := make([][]bool, len(p.Modules))
	for mi, m := range p.Modules {
		for _, l := range m.Lessons {
			grid[mi] = append(grid[mi], l.Locked)
		}
	}
	return grid
}

func assertGrid(t *testing.T, p Progress, want [][]bool) {
	t.Helper()
	got := lockGrid(p)
	for mi := range want {
		for li := range want[mi] {
			if got[mi][li] != want[mi][li] {
				t.Errorf("lesson (%d,%d) locked = %v, want %v", mi, li, got[mi][li], want[mi][li])
			}
		}
	}
}

func TestResolve_OnlyEntryUnlockedInitially(t *testing.T) {
	p, err := Resolve(twoByTwo(), NewCompletionSet(), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	assertGrid(t, p, [][]bool{
		{false, true},
		{true, true},
	})
}

func TestResolve_CompletingUnlocksNext(t *testing.T) {
	p, err := Resolve(twoByTwo(), NewCompletionSet("l00"), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	assertGrid(t, p, [][]bool{
		{false, false},
		{true, true},
	})

	p, err = Resolve(twoByTwo(), NewCompletionSet("l00", "l01"), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	assertGrid(t, p, [][]bool{
		{false, false},
		{false, true},
	})
}

func TestResolve_NotEnrolledLocksEverything(t *testing.T) {
	completed := NewCompletionSet("l00", "l01", "l10", "l11")
	p, err := Resolve(twoByTwo(), completed, false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	assertGrid(t, p, [][]bool{
		{true, true},
		{true, true},
	})
	if p.Modules[0].Percent != 100 {
		t.Errorf("module 0 percent = %d, want 100 (completion still counted)", p.Modules[0].Percent)
	}
	if _, ok := p.Next(); ok {
		t.Error("Next should report nothing for a learner who is not enrolled")
	}
}

func TestResolve_CompletedAlwaysUnlocked(t *testing.T) {
	// l11 completed out of order: it stays unlocked even though l10 is not done.
	p, err := Resolve(twoByTwo(), NewCompletionSet("l11"), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	assertGrid(t, p, [][]bool{
		{false, true},
		{true, false},
	})
}

func TestResolve_FirstLessonOfModuleNeedsLastOfPrevious(t *testing.T) {
	c := Curriculum{
		ID: "c2",
		Modules: []Module{
			{ID: "a", Lessons: []Lesson{{ID: "a1", Type: TypeText}, {ID: "a2", Type: TypeText}, {ID: "a3", Type: TypeText}}},
			{ID: "b", Lessons: []Lesson{{ID: "b1", Type: TypeText}}},
		},
	}
	// a1 done but not a3: b1 stays locked.
	p, err := Resolve(c, NewCompletionSet("a1", "a2"), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b1, _ := p.Lesson("b1")
	if !b1.Locked {
		t.Error("b1 should be locked until a3 is completed")
	}

	p, _ = Resolve(c, NewCompletionSet("a3"), true)
	b1, _ = p.Lesson("b1")
	if b1.Locked {
		t.Error("b1 should unlock once a3 is completed")
	}
}

func TestResolve_ModulePercent(t *testing.T) {
	c := Curriculum{
		ID: "c3",
		Modules: []Module{
			{ID: "thirds", Lessons: []Lesson{{ID: "t1", Type: TypeText}, {ID: "t2", Type: TypeText}, {ID: "t3", Type: TypeText}}},
		},
	}
	tests := []struct {
		completed CompletionSet
		want      int
	}{
		{NewCompletionSet(), 0},
		{NewCompletionSet("t1"), 33},
		{NewCompletionSet("t1", "t2"), 67},
		{NewCompletionSet("t1", "t2", "t3"), 100},
		{NewCompletionSet("t1", "unknown"), 33},
	}

	for _, tt := range tests {
		p, err := Resolve(c, tt.completed, true)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got := p.Modules[0].Percent; got != tt.want {
			t.Errorf("percent with %v = %d, want %d", tt.completed, got, tt.want)
		}
	}
}

func TestResolve_EmptyModuleRejected(t *testing.T) {
	c := Curriculum{ID: "bad", Modules: []Module{{ID: "m", Lessons: nil}}}
	_, err := Resolve(c, nil, true)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Resolve error = %v, want ErrInvalidInput", err)
	}
}

func TestResolve_NilCompletionSet(t *testing.T) {
	p, err := Resolve(twoByTwo(), nil, true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Modules[0].Lessons[0].Locked {
		t.Error("entry lesson should be unlocked with a nil completion set")
	}
}

func TestProgress_FrontierAndNext(t *testing.T) {
	p, _ := Resolve(twoByTwo(), NewCompletionSet("l00"), true)

	frontier := p.Frontier()
	if len(frontier) != 1 || frontier[0].LessonID != "l01" {
		t.Fatalf("Frontier = %+v, want [l01]", frontier)
	}
	next, ok := p.Next()
	if !ok || next.LessonID != "l01" {
		t.Errorf("Next = %+v, %v; want l01", next, ok)
	}

	done, _ := Resolve(twoByTwo(), NewCompletionSet("l00", "l01", "l10", "l11"), true)
	if _, ok := done.Next(); ok {
		t.Error("Next should report nothing for a finished course")
	}
	if !done.IsComplete() {
		t.Error("IsComplete = false for a finished course")
	}
	if done.Percent() != 100 {
		t.Errorf("Percent = %d, want 100", done.Percent())
	}
}

func TestProgress_CoursePercent(t *testing.T) {
	p, _ := Resolve(twoByTwo(), NewCompletionSet("l00"), true)
	if got := p.Percent(); got != 25 {
		t.Errorf("Percent = %d, want 25", got)
	}
	if p.IsComplete() {
		t.Error("IsComplete = true for a partly finished course")
	}
}
