package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/filter"
	"github.com/roach88/fitrank/internal/scoring"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID is an optional fixed run ID.
	// If empty, defaults to "test-run-default" for deterministic snapshots.
	RunID string `yaml:"run_id,omitempty"`

	// Catalog is a catalog path, relative to the scenario file.
	// Mutually exclusive with Exercises.
	Catalog string `yaml:"catalog,omitempty"`

	// Exercises is an inline candidate pool.
	Exercises []exercise.Exercise `yaml:"exercises,omitempty"`

	// Weights overrides the default scoring weights.
	Weights *scoring.Weights `yaml:"weights,omitempty"`

	Eligibility filter.Criteria  `yaml:"eligibility"`
	Scoring     scoring.Criteria `yaml:"scoring"`

	// Assertions validate the ranked output and attribution.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of a run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "selected": the ranked list holds exactly Names, in any order
	// - "not_selected": none of Names is ranked
	// - "order": Names appear in this relative order
	// - "top": the ranked list starts with exactly Names
	// - "score": Name has score Score
	// - "excluded": Name was excluded for exactly Reasons, in order
	Type string `yaml:"type"`

	// Name is the exercise name (used by score, excluded).
	Name string `yaml:"name,omitempty"`

	// Names are exercise names (used by selected, not_selected, order, top).
	Names []string `yaml:"names,omitempty"`

	// Score is the expected final score (used by score).
	Score *float64 `yaml:"score,omitempty"`

	// Reasons are the expected exclusion reasons (used by excluded).
	Reasons []attribution.Reason `yaml:"reasons,omitempty"`
}

// Assertion type constants.
const (
	AssertSelected    = "selected"
	AssertNotSelected = "not_selected"
	AssertOrder       = "order"
	AssertTop         = "top"
	AssertScore       = "score"
	AssertExcluded    = "excluded"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative Catalog path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Catalog != "" && len(s.Exercises) > 0 {
		return fmt.Errorf("catalog and exercises are mutually exclusive")
	}
	if s.Catalog == "" && s.Exercises == nil {
		return fmt.Errorf("one of catalog or exercises is required")
	}
	if s.Catalog != "" {
		if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog not found: %s", s.Catalog)
		}
	}

	if s.Weights != nil {
		if err := s.Weights.Validate(); err != nil {
			return fmt.Errorf("weights: %w", err)
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSelected, AssertTop:
		if a.Names == nil {
			return fmt.Errorf("assertions[%d]: names is required for %s (use [] for none)", index, a.Type)
		}
	case AssertNotSelected, AssertOrder:
		if len(a.Names) == 0 {
			return fmt.Errorf("assertions[%d]: names list is required for %s", index, a.Type)
		}
	case AssertScore:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for score", index)
		}
		if a.Score == nil {
			return fmt.Errorf("assertions[%d]: score is required for score", index)
		}
	case AssertExcluded:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for excluded", index)
		}
		if len(a.Reasons) == 0 {
			return fmt.Errorf("assertions[%d]: reasons list is required for excluded", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
