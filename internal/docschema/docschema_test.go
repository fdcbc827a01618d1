package docschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointSchema = Schema{
	Name: "test-point",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"x", "y"},
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
			"y": map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"x": 1, "y": 2}`, false},
		{"missing field", `{"x": 1}`, true},
		{"wrong type", `{"x": "one", "y": 2}`, true},
		{"below minimum", `{"x": 1, "y": -1}`, true},
		{"malformed json", `{"x": `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(pointSchema, []byte(tt.raw))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
			assert.Equal(t, "test-point", verr.Schema)
		})
	}
}

func TestValidate_CachesCompiledSchema(t *testing.T) {
	require.NoError(t, Validate(pointSchema, []byte(`{"x": 0, "y": 0}`)))
	_, ok := schemaCache.Load(pointSchema.Name)
	assert.True(t, ok, "expected compiled schema to be cached")
}
