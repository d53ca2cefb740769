package schema

import (
	"os"

	"github.com/tidwall/pretty"
)

// sampleSchema is the built-in starter document emitted by WriteSample.
const sampleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string"},
		"age": {"type": "number", "minimum": 0},
		"email": {"type": "string", "format": "email"},
		"tags": {
			"type": "array",
			"items": {"type": "string"}
		},
		"address": {
			"type": "object",
			"properties": {
				"street": {"type": "string"},
				"city": {"type": "string"},
				"country": {"type": "string"}
			},
			"required": ["street", "city"]
		}
	},
	"required": ["id", "name"]
}`

// WriteSample writes the built-in sample schema document to path,
// pretty-printed with two-space indentation.
func WriteSample(path string) error {
	doc := pretty.PrettyOptions([]byte(sampleSchema), &pretty.Options{Indent: "  "})
	return os.WriteFile(path, doc, 0644)
}
