// Package curriculum models ordered courses (modules of ordered lessons) and
// derives which lessons a learner may open from their completion history.
package curriculum

import "errors"

// ErrInvalidInput is returned for malformed curricula.
var ErrInvalidInput = errors.New("invalid curriculum")

// ContentType tags the kind of content a lesson carries.
type ContentType string

const (
	TypeVideo       ContentType = "video"
	TypeText        ContentType = "text"
	TypeQuiz        ContentType = "quiz"
	TypeInteractive ContentType = "interactive"
)

// AllContentTypes returns the content types in display order.
func AllContentTypes() []ContentType {
	return []ContentType{TypeVideo, TypeText, TypeQuiz, TypeInteractive}
}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypeVideo, TypeText, TypeQuiz, TypeInteractive:
		return true
	}
	return false
}

// Icon returns the display icon for the content type.
func (t ContentType) Icon() string {
	switch t {
	case TypeVideo:
		return "▶"
	case TypeText:
		return "≡"
	case TypeQuiz:
		return "?"
	case TypeInteractive:
		return "✎"
	default:
		return "·"
	}
}

// Lesson is the smallest unit of content.
type Lesson struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Type            ContentType `json:"type"`
	DurationMinutes int         `json:"durationMinutes,omitempty"`
}

// Module is an ordered group of lessons.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Curriculum is an ordered sequence of modules. Order is the prerequisite
// chain: each lesson requires the one before it.
type Curriculum struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Modules     []Module `json:"modules"`
}

// LessonCount returns the number of lessons across all modules.
func (c Curriculum) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// FindLesson returns the module and lesson indices of a lesson ID.
func (c Curriculum) FindLesson(id string) (moduleIdx, lessonIdx int, ok bool) {
	for mi, m := range c.Modules {
		for li, l := range m.Lessons {
			if l.ID == id {
				return mi, li, true
			}
		}
	}
	return -1, -1, false
}

// HasType reports whether any lesson has the given content type.
func (c Curriculum) HasType(t ContentType) bool {
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.Type == t {
				return true
			}
		}
	}
	return false
}

// CompletionSet is the set of completed lesson IDs.
type CompletionSet map[string]bool

// NewCompletionSet builds a CompletionSet from lesson IDs.
func NewCompletionSet(ids ...string) CompletionSet {
	s := make(CompletionSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
