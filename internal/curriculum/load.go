package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vidhya/vidhya/internal/docschema"
)

// Schema is the JSON Schema authored curriculum files must satisfy.
var Schema = docschema.Schema{
	Name: "curriculum",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"id", "title", "modules"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"category":    map[string]any{"type": "string"},
			"difficulty":  map[string]any{"type": "string", "enum": []string{"beginner", "intermediate", "advanced"}},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"id", "title", "lessons"},
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"title": map[string]any{"type": "string"},
						"lessons": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type":     "object",
								"required": []string{"id", "title", "type"},
								"properties": map[string]any{
									"id":              map[string]any{"type": "string", "minLength": 1},
									"title":           map[string]any{"type": "string"},
									"type":            map[string]any{"type": "string", "enum": []string{"video", "text", "quiz", "interactive"}},
									"durationMinutes": map[string]any{"type": "integer", "minimum": 0},
								},
							},
						},
					},
				},
			},
		},
	},
}

// Parse validates raw JSON against Schema, decodes it and runs the
// structural checks of Validate.
func Parse(raw []byte) (Curriculum, error) {
	if err := docschema.Validate(Schema, raw); err != nil {
		return Curriculum{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var c Curriculum
	if err := json.Unmarshal(raw, &c); err != nil {
		return Curriculum{}, fmt.Errorf("decode curriculum: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Curriculum{}, err
	}
	return c, nil
}

// Load reads and parses a curriculum file.
func Load(path string) (Curriculum, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Curriculum{}, fmt.Errorf("read curriculum: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return Curriculum{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDir loads every *.json curriculum in dir, sorted by title.
func LoadDir(dir string) ([]Curriculum, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	courses := make([]Curriculum, 0, len(paths))
	for _, p := range paths {
		c, err := Load(p)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Title < courses[j].Title
	})
	return courses, nil
}
