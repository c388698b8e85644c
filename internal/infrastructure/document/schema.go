package document

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/fontstack/document.schema.json"

var languageFontsType = reflect.TypeOf(LanguageFonts{})

// Schema returns the JSON schema of the configuration document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == languageFontsType || t == reflect.PtrTo(languageFontsType) {
				return &jsonschema.Schema{
					Type:                 "object",
					AdditionalProperties: &jsonschema.Schema{Type: "string"},
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Document{})
	schema.ID = schemaID
	schema.Title = "Font stack configuration"
	schema.Description = "Portable font stack with language overrides and heading typography"
	return schema
}

// SchemaJSON returns Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
