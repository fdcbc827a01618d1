package curriculum

import "github.com/vidhya/vidhya/internal/ratio"

// LessonState is the derived lock state of one lesson.
type LessonState struct {
	LessonID    string
	Title       string
	Type        ContentType
	ModuleIndex int
	LessonIndex int
	Locked      bool
	Completed   bool
}

// ModuleState is the derived state of one module.
type ModuleState struct {
	ModuleID  string
	Title     string
	Completed int // completed lessons in this module
	Total     int
	Percent   int // round(100 × Completed / Total)
	Lessons   []LessonState
}

// IsComplete reports whether every lesson in the module is completed.
func (m ModuleState) IsComplete() bool {
	return m.Completed == m.Total
}

// Progress is the lock state of a whole curriculum for one learner.
type Progress struct {
	CourseID string
	Enrolled bool
	Modules  []ModuleState
}

// Resolve derives the lock state of every lesson in c.
//
// A lesson is unlocked when the learner is enrolled and either it is the
// first lesson of the curriculum, the lesson before it (crossing module
// boundaries) is completed, or it is itself completed. Without enrollment
// every lesson is locked. Completed IDs that are not part of c are ignored.
func Resolve(c Curriculum, completed CompletionSet, enrolled bool) (Progress, error) {
	if err := c.Validate(); err != nil {
		return Progress{}, err
	}

	p := Progress{
		CourseID: c.ID,
		Enrolled: enrolled,
		Modules:  make([]ModuleState, len(c.Modules)),
	}

	// prevDone tracks whether the lesson immediately before the current one
	// in curriculum order is completed. The entry lesson has no predecessor.
	prevDone := true
	for mi, m := range c.Modules {
		ms := ModuleState{
			ModuleID: m.ID,
			Title:    m.Title,
			Total:    len(m.Lessons),
			Lessons:  make([]LessonState, len(m.Lessons)),
		}
		for li, l := range m.Lessons {
			done := completed[l.ID]
			if done {
				ms.Completed++
			}
			ms.Lessons[li] = LessonState{
				LessonID:    l.ID,
				Title:       l.Title,
				Type:        l.Type,
				ModuleIndex: mi,
				LessonIndex: li,
				Completed:   done,
				Locked:      !enrolled || !(prevDone || done),
			}
			prevDone = done
		}
		ms.Percent = ratio.Percent(ms.Completed, ms.Total)
		p.Modules[mi] = ms
	}

	return p, nil
}

// Lesson returns the state of the lesson with the given ID.
func (p Progress) Lesson(id string) (LessonState, bool) {
	for _, m := range p.Modules {
		for _, l := range m.Lessons {
			if l.LessonID == id {
				return l, true
			}
		}
	}
	return LessonState{}, false
}

// Frontier returns the unlocked lessons that are not yet completed, in
// curriculum order.
func (p Progress) Frontier() []LessonState {
	var result []LessonState
	for _, m := range p.Modules {
		for _, l := range m.Lessons {
			if !l.Locked && !l.Completed {
				result = append(result, l)
			}
		}
	}
	return result
}

// Next returns the first lesson on the frontier. ok is false when the
// course is finished or nothing is unlocked.
func (p Progress) Next() (LessonState, bool) {
	frontier := p.Frontier()
	if len(frontier) == 0 {
		return LessonState{}, false
	}
	return frontier[0], true
}

// Percent returns the completion percentage over the whole curriculum.
func (p Progress) Percent() int {
	done, total := 0, 0
	for _, m := range p.Modules {
		done += m.Completed
		total += m.Total
	}
	return ratio.Percent(done, total)
}

// IsComplete reports whether every lesson in the curriculum is completed.
func (p Progress) IsComplete() bool {
	for _, m := range p.Modules {
		if !m.IsComplete() {
			return false
		}
	}
	return len(p.Modules) > 0
}
