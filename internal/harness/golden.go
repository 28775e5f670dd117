package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/fitrank/internal/attribution"
)

// GoldenDir is the fixture directory used by RunWithGolden, relative to
// the test's package directory.
const GoldenDir = "testdata/scenarios/golden"

// RankSnapshot captures the observable output of a scenario run.
type RankSnapshot struct {
	ScenarioName string                  `json:"scenario_name"`
	RunID        string                  `json:"run_id"`
	Ranked       []RankedEntry           `json:"ranked"`
	Exclusions   []attribution.Exclusion `json:"exclusions"`
}

// RankedEntry is one ranked exercise in a snapshot.
type RankedEntry struct {
	Rank      int                   `json:"rank"`
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Score     float64               `json:"score"`
	Breakdown attribution.Breakdown `json:"breakdown"`
}

// Snapshot renders a result as indented JSON for golden comparison.
// Field order is fixed by the snapshot structs, so equal results produce
// identical bytes.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	snap := RankSnapshot{
		ScenarioName: scenarioName,
		RunID:        result.RunID,
		Ranked:       make([]RankedEntry, len(result.Ranked)),
		Exclusions:   []attribution.Exclusion{},
	}
	for i, s := range result.Ranked {
		snap.Ranked[i] = RankedEntry{
			Rank:      i + 1,
			ID:        s.ID,
			Name:      s.Name,
			Score:     s.Score,
			Breakdown: s.Breakdown,
		}
	}
	snap.Exclusions = append(snap.Exclusions, result.Report.Exclusions...)

	return json.MarshalIndent(snap, "", "  ")
}

// RunWithGolden executes a scenario and compares its snapshot against
// GoldenDir/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}

// GoldenPath returns the golden file for a scenario file: a golden/
// directory beside it, named after the file's base name.
func GoldenPath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// CompareGolden reports whether the result's snapshot matches the golden
// file at path byte for byte.
func CompareGolden(path, scenarioName string, result *Result) (bool, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	got, err := Snapshot(scenarioName, result)
	if err != nil {
		return false, err
	}
	return string(want) == string(got), nil
}

// UpdateGolden writes the result's snapshot to path, creating the
// directory if needed.
func UpdateGolden(path, scenarioName string, result *Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
