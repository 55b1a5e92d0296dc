// Package parser reads and writes YAML crew files.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"Crewflow/internal/catalog"
	"Crewflow/pkg/types"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads and validates a crew file.
func ParseYAML(path string) (*types.CrewConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a crew file. Unknown fields are rejected.
func Parse(data []byte) (*types.CrewConfig, error) {
	config := types.CrewConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Field: "workflow", Reason: "empty crew file"}
		}
		return nil, fmt.Errorf("parse crew file: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load parses the crew file at path and builds its workflow against cat.
func Load(path string, cat *catalog.Catalog) (*types.WorkflowSpec, error) {
	config, err := ParseYAML(path)
	if err != nil {
		return nil, err
	}
	return Build(config, cat)
}
