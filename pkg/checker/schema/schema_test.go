package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const personSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"age": {"type": "number", "minimum": 0}
	},
	"required": ["id"]
}`

func TestLoadFile(t *testing.T) {
	doc, err := LoadFile(writeSchemaFile(t, personSchema))
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFileNotJSON(t *testing.T) {
	_, err := LoadFile(writeSchemaFile(t, "not a schema"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	doc, err := LoadFile(writeSchemaFile(t, personSchema))
	require.NoError(t, err)

	tests := []struct {
		name   string
		json   string
		passed bool
	}{
		{"conforming", `{"id": "1", "age": 30}`, true},
		{"missing required", `{"age": 30}`, false},
		{"wrong type", `{"id": 1}`, false},
		{"negative age", `{"id": "1", "age": -5}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := doc.Validate(tt.json)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, outcome.Passed)
			if !tt.passed {
				assert.NotEmpty(t, outcome.Errors)
				assert.NotEmpty(t, outcome.Errors[0].Description)
			}
		})
	}
}

func TestSetForColumn(t *testing.T) {
	def, err := LoadFile(writeSchemaFile(t, personSchema))
	require.NoError(t, err)
	col2, err := LoadFile(writeSchemaFile(t, `{"type": "array"}`))
	require.NoError(t, err)

	set := NewSet()
	set.Default = def
	set.ByColumn[2] = col2

	assert.Same(t, col2, set.ForColumn(2), "per-column schema overrides the default")
	assert.Same(t, def, set.ForColumn(0), "unmapped columns fall back to the default")

	noDefault := NewSet()
	noDefault.ByColumn[1] = col2
	assert.Nil(t, noDefault.ForColumn(0), "no default means no validation for unmapped columns")

	var nilSet *Set
	assert.Nil(t, nilSet.ForColumn(0))
	assert.True(t, nilSet.Empty())
	assert.True(t, NewSet().Empty())
	assert.False(t, set.Empty())
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_schema.json")
	require.NoError(t, WriteSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	// The emitted document must itself load as a usable schema.
	doc, err := LoadFile(path)
	require.NoError(t, err)

	outcome, err := doc.Validate(`{"id": "1", "name": "Bob"}`)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)

	outcome, err = doc.Validate(`{"name": "Bob"}`)
	require.NoError(t, err)
	assert.False(t, outcome.Passed)
}
