package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema for the catalog file, for editor validation.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Catalog{})
	sch.Title = "devcheck tools catalog"
	sch.Description = "Declarative list of tool checks plus system requirements."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
