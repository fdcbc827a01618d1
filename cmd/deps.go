package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/progress"
	"github.com/vidhya/vidhya/internal/quiz"
	"github.com/vidhya/vidhya/internal/rewards"
	"github.com/vidhya/vidhya/internal/store"
)

// openService opens the store and builds the progress service on top of
// it. Callers must close the returned store.
func openService(cmd *cobra.Command) (*progress.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := progress.NewService(st.ProgressRepo(), st.EventRepo(), rewards.DefaultConfig(), newLogger(cmd))
	return svc, st, nil
}

// loadCourses reads every curriculum in the content courses directory.
func loadCourses(cmd *cobra.Command) ([]curriculum.Curriculum, error) {
	dir := filepath.Join(resolveContentDir(cmd), "courses")
	courses, err := curriculum.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load courses from %s: %w", dir, err)
	}
	return courses, nil
}

// findCourse returns the course with the given ID.
func findCourse(cmd *cobra.Command, id string) (curriculum.Curriculum, error) {
	courses, err := loadCourses(cmd)
	if err != nil {
		return curriculum.Curriculum{}, err
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return curriculum.Curriculum{}, fmt.Errorf("course %q not found", id)
}

// loadTest reads a test from a file path, or by ID from the content tests
// directory.
func loadTest(cmd *cobra.Command, ref string) (quiz.Test, error) {
	if _, err := os.Stat(ref); err == nil {
		return quiz.Load(ref)
	}
	return quiz.Load(filepath.Join(resolveContentDir(cmd), "tests", ref+".json"))
}
