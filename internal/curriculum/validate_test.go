package curriculum

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	if err := twoByTwo().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := Curriculum{
		Modules: []Module{
			{ID: "m", Lessons: []Lesson{{ID: "x", Type: TypeText}, {ID: "x", Type: "podcast"}}},
			{ID: "m", Lessons: nil},
			{ID: "", Lessons: []Lesson{{ID: "", Type: TypeVideo}}},
		},
	}

	err := c.Validate()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Validate error = %v, want ErrInvalidInput", err)
	}

	msg := err.Error()
	for _, want := range []string{
		"curriculum ID is empty",
		`duplicate lesson ID: "x"`,
		`unknown content type "podcast"`,
		`duplicate module ID: "m"`,
		"has no lessons",
		"module 2: ID is empty",
		"lesson 0: ID is empty",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
}

func TestValidate_NegativeDuration(t *testing.T) {
	c := Curriculum{ID: "c", Modules: []Module{{ID: "m", Lessons: []Lesson{{ID: "l", Type: TypeText, DurationMinutes: -5}}}}}
	if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate error = %v, want ErrInvalidInput", err)
	}
}

func TestContentType_Valid(t *testing.T) {
	for _, ct := range AllContentTypes() {
		if !ct.Valid() {
			t.Errorf("%q should be valid", ct)
		}
		if ct.Icon() == "·" {
			t.Errorf("%q has no icon", ct)
		}
	}
	if ContentType("slides").Valid() {
		t.Error(`"slides" should not be valid`)
	}
}

func TestFindLesson(t *testing.T) {
	c := twoByTwo()
	mi, li, ok := c.FindLesson("l10")
	if !ok || mi != 1 || li != 0 {
		t.Errorf("FindLesson(l10) = (%d, %d, %v), want (1, 0, true)", mi, li, ok)
	}
	if _, _, ok := c.FindLesson("nope"); ok {
		t.Error("FindLesson(nope) should not be found")
	}
	if c.LessonCount() != 4 {
		t.Errorf("LessonCount = %d, want 4", c.LessonCount())
	}
}
