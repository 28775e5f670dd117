// Package catalog loads exercise catalogs and selection requests from disk.
//
// Catalogs come in two formats:
//
//	// exercises.cue
//	package gym
//
//	exercises: {
//		"goblet-squat": {
//			name:             "Goblet Squat"
//			primary_muscle:   "quads"
//			strength_level:   "low"
//			complexity_level: "low"
//			loaded_joints: ["knee"]
//		}
//	}
//
// and YAML (or JSON) with an exercises list whose entries carry their own id.
//
// Loading checks structure only: types and field names. Records with empty
// required fields or unknown level labels load unchanged, since the
// eligibility filter treats them as malformed data. Lint reports them.
package catalog
