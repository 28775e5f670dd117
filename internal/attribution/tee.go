package attribution

import "github.com/roach88/fitrank/internal/exercise"

// Tee returns a Sink that forwards every event to each non-nil sink in order.
// Returns Discard when no sinks remain.
func Tee(sinks ...Sink) Sink {
	var live []Sink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return Discard
	case 1:
		return live[0]
	}
	return tee(live)
}

type tee []Sink

func (t tee) RecordExclusion(ex exercise.Exercise, reason Reason) {
	for _, s := range t {
		s.RecordExclusion(ex, reason)
	}
}

func (t tee) RecordScore(ex exercise.Exercise, b Breakdown) {
	for _, s := range t {
		s.RecordScore(ex, b)
	}
}
