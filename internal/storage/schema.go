package storage

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskDocumentSchema describes the persisted file: a JSON array of task
// objects. Field values beyond their JSON types are normalized after decode,
// not rejected here.
const taskDocumentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "created_at", "done"],
    "properties": {
      "id": {"type": "integer"},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "created_at": {"type": "string"},
      "due": {"type": "string"},
      "priority": {"type": "string"},
      "category": {"type": "string"},
      "done": {"type": "boolean"}
    }
  }
}`

var compiledTaskSchema = jsonschema.MustCompileString("tasks.schema.json", taskDocumentSchema)

func validateTaskDocument(raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("storage: parse task file: %w", err)
	}
	if err := compiledTaskSchema.Validate(doc); err != nil {
		return fmt.Errorf("storage: task file schema: %w", err)
	}
	return nil
}
