package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of Config, keyed by the same names
// viper reads from config.toml.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "mapstructure",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/ssnfield/config.schema.json"
	schema.Title = "ssnfield Configuration"
	schema.Description = "Configuration schema for ssnfield, a terminal SSN input field"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the JSON schema to path.
func WriteSchemaFile(path string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
