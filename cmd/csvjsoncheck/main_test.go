package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnSchema(t *testing.T) {
	idx, path, err := parseColumnSchema("2=schemas/col2.json")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "schemas/col2.json", path)
}

func TestParseColumnSchemaInvalid(t *testing.T) {
	for _, spec := range []string{"", "2", "2=", "x=schema.json", "-1=schema.json"} {
		_, _, err := parseColumnSchema(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}
