package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for menu files by reflecting the
// Config struct. Extensions are excluded; they are decoded separately.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
		// Expand struct references instead of using $ref for cleaner base schema.
		ExpandedStruct: true,
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Console UI Menu Configuration"
	schema.Description = "Pages, options and actions of a console menu."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
