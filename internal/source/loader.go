// Package source loads YAML documents into the raw map[string]any trees that
// seed records. Keeping this outside the record package keeps the library
// itself free of serialization concerns.
package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML document from the given path.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses YAML data into a map[string]any tree. The document root must
// be a mapping. Nested mappings decode as map[string]any, which is exactly
// the raw-mapping shape records wrap recursively.
func Parse(data []byte) (map[string]any, error) {
	var doc map[string]any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
