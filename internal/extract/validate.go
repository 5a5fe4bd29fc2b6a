package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractedFieldsSchema returns the JSON-Schema (draft 2020-12 subset)
// every extracted payload must satisfy before it is applied to a form:
// a flat object of snake_case string fields.
func BuildExtractedFieldsSchema() map[string]any {
	return map[string]any{
		"type":          "object",
		"minProperties": 1,
		"propertyNames": map[string]any{
			"pattern": `^[a-z][a-z0-9_]*$`,
		},
		"additionalProperties": map[string]any{
			"type": "string",
		},
	}
}

// ValidatePayload validates an extracted field payload against the schema.
func ValidatePayload(fields map[string]string) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return ValidateJSONAgainstSchema(BuildExtractedFieldsSchema(), data)
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
