package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vidhya/vidhya/internal/docschema"
)

// Schema is the JSON Schema authored test files must satisfy.
var Schema = docschema.Schema{
	Name: "quiz-test",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"id", "title", "durationMinutes", "passingScore", "questions"},
		"properties": map[string]any{
			"id":              map[string]any{"type": "string", "minLength": 1},
			"title":           map[string]any{"type": "string"},
			"durationMinutes": map[string]any{"type": "integer", "minimum": 1},
			"passingScore":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"prompt", "options", "correctOption"},
					"properties": map[string]any{
						"prompt":        map[string]any{"type": "string"},
						"options":       map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
						"correctOption": map[string]any{"type": "integer", "minimum": 0},
						"explanation":   map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// Parse validates raw JSON against Schema and decodes a Test.
func Parse(raw []byte) (Test, error) {
	if err := docschema.Validate(Schema, raw); err != nil {
		return Test{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var t Test
	if err := json.Unmarshal(raw, &t); err != nil {
		return Test{}, fmt.Errorf("decode test: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Test{}, err
	}
	return t, nil
}

// Load reads and parses a test file.
func Load(path string) (Test, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Test{}, fmt.Errorf("read test: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return Test{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
