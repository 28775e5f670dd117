package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/fitrank/internal/exercise"
)

// exercisesPath is the top-level field holding the catalog.
const exercisesPath = "exercises"

// knownFields lists the labels accepted inside a CUE exercise struct.
var knownFields = map[string]bool{
	"name":              true,
	"primary_muscle":    true,
	"secondary_muscles": true,
	"strength_level":    true,
	"complexity_level":  true,
	"loaded_joints":     true,
	"fatigue_profile":   true,
	"movement_pattern":  true,
	"function_tags":     true,
}

// LoadCUEDir loads every .cue file in dir as one CUE package.
func LoadCUEDir(dir string) ([]exercise.Exercise, error) {
	files, err := findFiles(dir, ".cue")
	if err != nil {
		return nil, &CompileError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scanning %s: %v", dir, err)}
	}
	if len(files) == 0 {
		return nil, &CompileError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &CompileError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, formatCUEError(inst.Err, ErrCodeLoadFailed, "")
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err, ErrCodeBuildFailed, "")
	}
	return CompileCatalog(value)
}

// LoadCUEFile loads a single .cue file.
func LoadCUEFile(path string) ([]exercise.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CompileError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err, ErrCodeBuildFailed, "")
	}
	return CompileCatalog(value)
}

// CompileCatalog extracts exercises from a built CUE value.
// Each field of the top-level exercises struct is one record and its label
// is the exercise ID. Records keep declaration order.
func CompileCatalog(v cue.Value) ([]exercise.Exercise, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err, ErrCodeBuildFailed, "")
	}

	exercisesVal := v.LookupPath(cue.ParsePath(exercisesPath))
	if !exercisesVal.Exists() {
		return nil, &CompileError{
			Code:    ErrCodeField,
			Field:   exercisesPath,
			Message: "exercises struct is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := exercisesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err, ErrCodeField, exercisesPath)
	}

	pool := []exercise.Exercise{}
	for iter.Next() {
		ex, err := CompileExercise(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		pool = append(pool, ex)
	}
	return pool, nil
}

// CompileExercise parses one exercise struct.
func CompileExercise(id string, v cue.Value) (exercise.Exercise, error) {
	ex := exercise.Exercise{ID: id}
	prefix := exercisesPath + "." + id + "."

	fields, err := v.Fields()
	if err != nil {
		return ex, formatCUEError(err, ErrCodeField, exercisesPath+"."+id)
	}
	for fields.Next() {
		if !knownFields[fields.Label()] {
			return ex, &CompileError{
				Code:    ErrCodeField,
				Field:   prefix + fields.Label(),
				Message: "unknown field",
				Pos:     fields.Value().Pos(),
			}
		}
	}

	scalars := []struct {
		label string
		dst   *string
	}{
		{"name", &ex.Name},
		{"primary_muscle", &ex.PrimaryMuscle},
		{"fatigue_profile", &ex.FatigueProfile},
		{"movement_pattern", &ex.MovementPattern},
	}
	for _, f := range scalars {
		if err := lookupString(v, f.label, prefix, f.dst); err != nil {
			return ex, err
		}
	}

	var strength, complexity string
	if err := lookupString(v, "strength_level", prefix, &strength); err != nil {
		return ex, err
	}
	if err := lookupString(v, "complexity_level", prefix, &complexity); err != nil {
		return ex, err
	}
	ex.Strength = exercise.Level(strength)
	ex.Complexity = exercise.Level(complexity)

	lists := []struct {
		label string
		dst   *[]string
	}{
		{"secondary_muscles", &ex.SecondaryMuscles},
		{"loaded_joints", &ex.LoadedJoints},
		{"function_tags", &ex.FunctionTags},
	}
	for _, f := range lists {
		if err := lookupStrings(v, f.label, prefix, f.dst); err != nil {
			return ex, err
		}
	}

	return ex, nil
}

// lookupString sets *dst when label exists. Absent labels leave it empty.
func lookupString(v cue.Value, label, prefix string, dst *string) error {
	val := v.LookupPath(cue.ParsePath(label))
	if !val.Exists() {
		return nil
	}
	s, err := val.String()
	if err != nil {
		return &CompileError{
			Code:    ErrCodeField,
			Field:   prefix + label,
			Message: fmt.Sprintf("must be a string, got %v", val.IncompleteKind()),
			Pos:     val.Pos(),
		}
	}
	*dst = s
	return nil
}

// lookupStrings sets *dst when label exists and is a list of strings.
func lookupStrings(v cue.Value, label, prefix string, dst *[]string) error {
	val := v.LookupPath(cue.ParsePath(label))
	if !val.Exists() {
		return nil
	}
	iter, err := val.List()
	if err != nil {
		return &CompileError{
			Code:    ErrCodeField,
			Field:   prefix + label,
			Message: fmt.Sprintf("must be a list of strings, got %v", val.IncompleteKind()),
			Pos:     val.Pos(),
		}
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return &CompileError{
				Code:    ErrCodeField,
				Field:   prefix + label,
				Message: fmt.Sprintf("list element must be a string, got %v", iter.Value().IncompleteKind()),
				Pos:     iter.Value().Pos(),
			}
		}
		out = append(out, s)
	}
	*dst = out
	return nil
}

// findFiles walks dir and returns the paths with extension ext.
func findFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
