package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/voicebus/hermes/proto"
)

// FieldType names the JSON type a payload field must carry.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldInteger FieldType = "integer"
	FieldBoolean FieldType = "boolean"
	FieldObject  FieldType = "object"
	FieldArray   FieldType = "array"
)

// Field declares one top-level payload field of a message variant.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Enum restricts a string field to a closed value set.
	Enum []string
}

// payloadSchema wraps a compiled JSON schema synthesized from a field list.
type payloadSchema struct {
	schema *jsonschema.Schema
}

// compileFieldSchema synthesizes a JSON Schema document from the declared
// field list and compiles it. Unknown extra properties are allowed so newer
// peers can add fields without breaking older consumers.
func compileFieldSchema(name string, fields []Field) (*payloadSchema, error) {
	properties := make(map[string]any, len(fields))
	var required []string

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field schema %q: field with empty name", name)
		}
		prop := map[string]any{"type": string(f.Type)}
		if len(f.Enum) > 0 {
			values := make([]any, len(f.Enum))
			for i, v := range f.Enum {
				values[i] = v
			}
			prop["enum"] = values
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("field schema %q: %w", name, err)
	}

	url := "hermes://schemas/" + name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("field schema %q: %w", name, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("field schema %q: %w", name, err)
	}
	return &payloadSchema{schema: schema}, nil
}

func (s *payloadSchema) validate(doc any) error {
	return s.schema.Validate(doc)
}

// newSchemaViolation converts a jsonschema validation failure into a
// SchemaViolationError, naming the offending field when the error locates
// one.
func newSchemaViolation(kind proto.Kind, err error) *SchemaViolationError {
	violation := &SchemaViolationError{Kind: kind, Err: err}

	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		leaf := ve
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		if loc := strings.TrimPrefix(leaf.InstanceLocation, "/"); loc != "" {
			violation.Field = strings.SplitN(loc, "/", 2)[0]
		} else if prop, ok := strings.CutPrefix(leaf.Message, "missing properties: "); ok {
			violation.Field = strings.Trim(strings.SplitN(prop, ",", 2)[0], "'")
		}
	}
	return violation
}
