package exercise

// Exercise is an immutable catalog record supplied by the persistence layer.
//
// Slices on Exercise are shared with the caller. The engine reads them but
// never appends to or rewrites them.
type Exercise struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	PrimaryMuscle    string   `json:"primary_muscle" yaml:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty" yaml:"secondary_muscles,omitempty"`

	// Strength and Complexity are independent ordinal axes.
	Strength   Level `json:"strength_level" yaml:"strength_level"`
	Complexity Level `json:"complexity_level" yaml:"complexity_level"`

	LoadedJoints    []string `json:"loaded_joints,omitempty" yaml:"loaded_joints,omitempty"`
	FatigueProfile  string   `json:"fatigue_profile,omitempty" yaml:"fatigue_profile,omitempty"`
	MovementPattern string   `json:"movement_pattern,omitempty" yaml:"movement_pattern,omitempty"`
	FunctionTags    []string `json:"function_tags,omitempty" yaml:"function_tags,omitempty"`
}

// IsComplete reports whether the record carries every field the filter
// requires: identifier, name, primary muscle, strength and complexity levels.
//
// Incomplete records are malformed data, not rejections. The filter drops
// them without reporting an exclusion reason.
func (e Exercise) IsComplete() bool {
	return len(MissingFields(e)) == 0
}

// MissingFields returns the names of required fields that are empty, in a
// fixed order. Returns nil for a complete record.
func MissingFields(e Exercise) []string {
	var missing []string
	if e.ID == "" {
		missing = append(missing, "id")
	}
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.PrimaryMuscle == "" {
		missing = append(missing, "primary_muscle")
	}
	if e.Strength == "" {
		missing = append(missing, "strength_level")
	}
	if e.Complexity == "" {
		missing = append(missing, "complexity_level")
	}
	return missing
}

// Fatigue profile tags used by the default catalog and the intensity table.
const (
	FatigueLowLocal         = "low_local"
	FatigueModerateLocal    = "moderate_local"
	FatigueHighLocal        = "high_local"
	FatigueModerateSystemic = "moderate_systemic"
	FatigueHighSystemic     = "high_systemic"
	FatigueMetabolic        = "metabolic"
)

// FatigueProfiles lists the known fatigue profile tags.
var FatigueProfiles = []string{
	FatigueLowLocal,
	FatigueModerateLocal,
	FatigueHighLocal,
	FatigueModerateSystemic,
	FatigueHighSystemic,
	FatigueMetabolic,
}
