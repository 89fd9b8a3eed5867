package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects Config into a JSON schema keyed by the TOML names.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/workbench/config.schema.json"
	schema.Title = "Workbench Layout Configuration"
	schema.Description = "Settings read by the workbench layout engine"
	return schema
}

// GenerateSchemaFile writes the JSON schema next to the config file and
// returns its path.
func GenerateSchemaFile(configDir string) (string, error) {
	schemaFile := filepath.Join(configDir, schemaFileName)

	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
