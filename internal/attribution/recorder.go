package attribution

import (
	"sync"

	"github.com/roach88/fitrank/internal/exercise"
)

// Exclusion is one recorded removal.
type Exclusion struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Reason       Reason `json:"reason"`
}

// ScoreEntry is one recorded score breakdown.
type ScoreEntry struct {
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Breakdown    Breakdown `json:"breakdown"`
}

// Report is an immutable snapshot of a Recorder.
type Report struct {
	Exclusions []Exclusion  `json:"exclusions"`
	Scores     []ScoreEntry `json:"scores"`
}

// ExclusionsFor returns the reasons recorded for the named exercise,
// in recording order.
func (r Report) ExclusionsFor(name string) []Reason {
	var reasons []Reason
	for _, ex := range r.Exclusions {
		if exercise.NameKey(ex.ExerciseName) == exercise.NameKey(name) {
			reasons = append(reasons, ex.Reason)
		}
	}
	return reasons
}

// ScoreFor returns the breakdown recorded for the named exercise.
func (r Report) ScoreFor(name string) (Breakdown, bool) {
	for _, s := range r.Scores {
		if exercise.NameKey(s.ExerciseName) == exercise.NameKey(name) {
			return s.Breakdown, true
		}
	}
	return Breakdown{}, false
}

// Recorder is an in-memory Sink with an explicit enable/clear lifecycle.
//
// A new Recorder starts enabled. While disabled, Record calls are dropped.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
// See the package documentation for cross-request sharing rules.
type Recorder struct {
	mu         sync.Mutex
	enabled    bool
	exclusions []Exclusion
	scores     []ScoreEntry
}

// NewRecorder creates an enabled, empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{enabled: true}
}

// Enable starts accepting entries.
func (r *Recorder) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = true
}

// Disable stops accepting entries. Existing entries are kept.
func (r *Recorder) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
}

// Enabled reports whether entries are being accepted.
func (r *Recorder) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Clear drops all entries. The enabled state is unchanged.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exclusions = nil
	r.scores = nil
}

// RecordExclusion implements Sink.
func (r *Recorder) RecordExclusion(ex exercise.Exercise, reason Reason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return
	}
	r.exclusions = append(r.exclusions, Exclusion{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Reason:       reason,
	})
}

// RecordScore implements Sink.
func (r *Recorder) RecordScore(ex exercise.Exercise, b Breakdown) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return
	}
	r.scores = append(r.scores, ScoreEntry{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Breakdown:    b,
	})
}

// Snapshot returns a copy of the recorded entries.
func (r *Recorder) Snapshot() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	report := Report{
		Exclusions: make([]Exclusion, len(r.exclusions)),
		Scores:     make([]ScoreEntry, len(r.scores)),
	}
	copy(report.Exclusions, r.exclusions)
	copy(report.Scores, r.scores)
	return report
}
