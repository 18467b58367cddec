package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://stepviz.dev/schemas/stream.json"

// streamSchemaJSON describes the canonical wire format: an array whose items
// are exactly one of the three per-kind shapes.
const streamSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "oneOf": [
      {
        "type": "object",
        "required": ["kind", "row", "col"],
        "additionalProperties": false,
        "properties": {
          "kind": {"enum": ["visit", "path"]},
          "row": {"type": "integer", "minimum": 0},
          "col": {"type": "integer", "minimum": 0}
        }
      },
      {
        "type": "object",
        "required": ["kind", "i", "j"],
        "additionalProperties": false,
        "properties": {
          "kind": {"enum": ["compare", "swap"]},
          "i": {"type": "integer", "minimum": 0},
          "j": {"type": "integer", "minimum": 0}
        }
      },
      {
        "type": "object",
        "required": ["kind", "index", "value"],
        "additionalProperties": false,
        "properties": {
          "kind": {"const": "overwrite"},
          "index": {"type": "integer", "minimum": 0},
          "value": {"type": "number"}
        }
      }
    ]
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func streamSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(streamSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("steps: unmarshal stream schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("steps: add stream schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Validate checks encoded bytes against the stream schema.
func Validate(data []byte) error {
	sch, err := streamSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStream, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStream, err)
	}
	return nil
}

// Decode validates data against the stream schema and decodes it.
func Decode(data []byte) (*Stream, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var s Stream
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStream, err)
	}
	return &s, nil
}
