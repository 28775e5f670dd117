package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fitrank/internal/filter"
	"github.com/roach88/fitrank/internal/scoring"
)

// Request is a selection request file:
//
//	eligibility:
//	  strength_ceiling: moderate
//	  complexity_ceiling: low
//	  avoid_joints: [shoulder]
//	scoring:
//	  target_muscles: [chest]
//	  include: [Push-Up]
type Request struct {
	Eligibility filter.Criteria  `json:"eligibility" yaml:"eligibility"`
	Scoring     scoring.Criteria `json:"scoring" yaml:"scoring"`
}

// LoadRequest reads a YAML request file. Unknown fields are rejected.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	return ParseRequest(data)
}

// ParseRequest decodes request bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &req, nil
}
