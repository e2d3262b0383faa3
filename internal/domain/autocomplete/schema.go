package autocomplete

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the persisted blob.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Blob{})

	schema.ID = "https://github.com/bnema/urlsmith/autocomplete.schema.json"
	schema.Title = "urlsmith autocomplete history"
	schema.Description = "Per query key history of values, persisted under a single storage key"

	return schema
}

// SchemaJSON returns Schema marshaled as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
