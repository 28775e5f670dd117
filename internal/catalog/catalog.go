package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/fitrank/internal/exercise"
)

// Load reads a catalog from path, dispatching on its form:
// a directory is loaded as a CUE package; .cue files are compiled alone;
// .yaml, .yml and .json files are decoded strictly.
//
// The returned pool is never nil.
func Load(path string) ([]exercise.Exercise, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &CompileError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}
	}
	if err != nil {
		return nil, &CompileError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog: %v", err)}
	}

	if info.IsDir() {
		return LoadCUEDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return LoadCUEFile(path)
	case ".yaml", ".yml", ".json":
		return LoadYAML(path)
	default:
		return nil, &CompileError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported catalog format %q (want .cue, .yaml, .yml or .json)", filepath.Ext(path)),
		}
	}
}
