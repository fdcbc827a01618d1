package curriculum

import (
	"fmt"
	"strings"
)

// Validate checks the curriculum for structural issues.
// Returns a combined error describing all problems found, or nil if valid.
func (c Curriculum) Validate() error {
	var errs []string

	if c.ID == "" {
		errs = append(errs, "curriculum ID is empty")
	}

	moduleIDs := make(map[string]bool, len(c.Modules))
	lessonIDs := make(map[string]bool)

	for mi, m := range c.Modules {
		prefix := fmt.Sprintf("module %d", mi)
		if m.ID == "" {
			errs = append(errs, prefix+": ID is empty")
		} else {
			prefix = fmt.Sprintf("module %q", m.ID)
			if moduleIDs[m.ID] {
				errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
			}
			moduleIDs[m.ID] = true
		}

		if len(m.Lessons) == 0 {
			errs = append(errs, prefix+": has no lessons")
		}

		for li, l := range m.Lessons {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("%s lesson %d: ID is empty", prefix, li))
				continue
			}
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			lessonIDs[l.ID] = true
			if !l.Type.Valid() {
				errs = append(errs, fmt.Sprintf("lesson %q: unknown content type %q", l.ID, l.Type))
			}
			if l.DurationMinutes < 0 {
				errs = append(errs, fmt.Sprintf("lesson %q: duration must be >= 0, got %d", l.ID, l.DurationMinutes))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidInput, strings.Join(errs, "\n  "))
	}
	return nil
}
