// Package harness provides a conformance testing framework for the
// selection engine.
//
// A scenario is a YAML file holding a candidate pool (inline or a catalog
// path), eligibility and scoring criteria, and assertions over the ranked
// output and the attribution report:
//
//	name: strength_ceiling
//	description: ceiling "low" keeps the two lowest strength levels
//	exercises:
//	  - {id: a, name: Dead Bug, primary_muscle: core, strength_level: very_low, complexity_level: low}
//	eligibility:
//	  strength_ceiling: low
//	  complexity_ceiling: high
//	assertions:
//	  - type: selected
//	    names: [Dead Bug]
//
// # Execution
//
// Run drives the real engine with recording enabled and a fixed run ID,
// then writes the report to an in-memory SQLite store. Exclusion
// assertions read back from the store, so every scenario also exercises
// the persistence round trip.
//
// # Golden Snapshots
//
// Snapshot renders the ranked list and exclusions as indented JSON.
// RunWithGolden compares it with testdata/scenarios/golden/<name>.golden
// through goldie; regenerate with:
//
//	go test ./internal/harness -update
package harness
