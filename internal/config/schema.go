package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON is the structural contract for the configuration, applied on
// top of the Go-side range checks.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "keybridge configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "repeat": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "initial_delay_ms": {"type": "integer", "minimum": 1, "maximum": 5000},
        "interval_ms": {"type": "integer", "minimum": 1, "maximum": 2000}
      }
    },
    "ime": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "mode": {"enum": ["auto", "enabled", "disabled", ""]},
        "engine_family": {"type": "integer", "minimum": 0},
        "engine_minor": {"type": "integer", "minimum": 0}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"enum": ["debug", "info", "warn", "warning", "error", ""]},
        "format": {"enum": ["text", "json", ""]},
        "output": {"enum": ["stdout", "stderr", "file", ""]},
        "file_path": {"type": "string"},
        "add_source": {"type": "boolean"}
      }
    },
    "trace": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "boolean"},
        "db_path": {"type": "string"}
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// validateSchema round-trips the config through JSON and validates it
// against the embedded schema.
func validateSchema(c *Config) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config for validation: %w", err)
	}

	var instance interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return fmt.Errorf("decode config for validation: %w", err)
	}

	if err := compiledSchema.Validate(instance); err != nil {
		return fmt.Errorf("config schema validation: %w", err)
	}
	return nil
}
