package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fitrank/internal/exercise"
)

// yamlCatalog is the document shape of YAML and JSON catalogs.
type yamlCatalog struct {
	Exercises []exercise.Exercise `yaml:"exercises"`
}

// LoadYAML loads a YAML or JSON catalog file.
// Unknown fields are rejected. Duplicate non-empty IDs are an error.
func LoadYAML(path string) ([]exercise.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CompileError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return ParseYAML(data)
}

// ParseYAML decodes catalog bytes.
func ParseYAML(data []byte) ([]exercise.Exercise, error) {
	var doc yamlCatalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &CompileError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	seen := make(map[string]bool, len(doc.Exercises))
	for i, ex := range doc.Exercises {
		if ex.ID == "" {
			continue
		}
		if seen[ex.ID] {
			return nil, &CompileError{
				Code:    ErrCodeDuplicate,
				Field:   fmt.Sprintf("exercises[%d].id", i),
				Message: fmt.Sprintf("duplicate exercise id %q", ex.ID),
			}
		}
		seen[ex.ID] = true
	}

	if doc.Exercises == nil {
		return []exercise.Exercise{}, nil
	}
	return doc.Exercises, nil
}
