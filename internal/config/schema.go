package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchemaFile generates a JSON schema file for the configuration.
// This is called automatically when a default config is created.
func GenerateSchemaFile() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")

	// Create reflector and generate schema
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	// Set schema metadata
	schema.ID = "https://github.com/quarterdeckhq/quarterdeck/config.schema.json"
	schema.Title = "Quarterdeck Configuration"
	schema.Description = "Configuration schema for Quarterdeck, an operator console gateway with keyboard-driven dispatch"

	// Marshal to pretty JSON
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	// Write schema file
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", schemaFile)
	return nil
}
