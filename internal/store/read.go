package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/fitrank/internal/attribution"
)

// ErrRunNotFound is returned by ReadRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the summary row for a run.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, candidates, eligible, request
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Candidates, &run.Eligible, &run.Request)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns every run in write order.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, candidates, eligible, request
		FROM runs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Candidates, &run.Eligible, &run.Request); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recently written run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, candidates, eligible, request
		FROM runs
		ORDER BY seq DESC
		LIMIT 1
	`).Scan(&run.ID, &run.Candidates, &run.Eligible, &run.Request)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("latest run: %w", ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// ReadExclusions returns a run's exclusions in recording order.
//
// Returns an empty slice (not nil) if none were recorded.
func (s *Store) ReadExclusions(ctx context.Context, runID string) ([]attribution.Exclusion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT exercise_id, exercise_name, reason
		FROM exclusions
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query exclusions: %w", err)
	}
	defer rows.Close()

	exclusions := []attribution.Exclusion{}
	for rows.Next() {
		var ex attribution.Exclusion
		var reason string
		if err := rows.Scan(&ex.ExerciseID, &ex.ExerciseName, &reason); err != nil {
			return nil, fmt.Errorf("scan exclusion: %w", err)
		}
		ex.Reason = attribution.Reason(reason)
		exclusions = append(exclusions, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exclusions: %w", err)
	}
	return exclusions, nil
}

// ReadExclusionsByName returns every recorded exclusion of the named
// exercise across runs, in run then recording order.
func (s *Store) ReadExclusionsByName(ctx context.Context, name string) ([]attribution.Exclusion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.exercise_id, e.exercise_name, e.reason
		FROM exclusions e
		JOIN runs r ON e.run_id = r.id
		WHERE e.exercise_name = ?
		ORDER BY r.seq ASC, e.seq ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query exclusions: %w", err)
	}
	defer rows.Close()

	exclusions := []attribution.Exclusion{}
	for rows.Next() {
		var ex attribution.Exclusion
		var reason string
		if err := rows.Scan(&ex.ExerciseID, &ex.ExerciseName, &reason); err != nil {
			return nil, fmt.Errorf("scan exclusion: %w", err)
		}
		ex.Reason = attribution.Reason(reason)
		exclusions = append(exclusions, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exclusions: %w", err)
	}
	return exclusions, nil
}

// ReadBreakdowns returns a run's score breakdowns in ranked order.
//
// Returns an empty slice (not nil) if none were recorded.
func (s *Store) ReadBreakdowns(ctx context.Context, runID string) ([]attribution.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT exercise_id, exercise_name, base, target_bonus, target_match,
		       lessen_penalty, lessen_match, intensity_adjustment, goal_adjustment,
		       include_boost, raw, total
		FROM score_breakdowns
		WHERE run_id = ?
		ORDER BY rank ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query breakdowns: %w", err)
	}
	defer rows.Close()

	scores := []attribution.ScoreEntry{}
	for rows.Next() {
		entry, err := scanBreakdown(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate breakdowns: %w", err)
	}
	return scores, nil
}

// ReadReport reassembles the attribution report of a run.
func (s *Store) ReadReport(ctx context.Context, runID string) (attribution.Report, error) {
	exclusions, err := s.ReadExclusions(ctx, runID)
	if err != nil {
		return attribution.Report{}, err
	}
	scores, err := s.ReadBreakdowns(ctx, runID)
	if err != nil {
		return attribution.Report{}, err
	}
	return attribution.Report{Exclusions: exclusions, Scores: scores}, nil
}

func scanBreakdown(rows *sql.Rows) (attribution.ScoreEntry, error) {
	var entry attribution.ScoreEntry
	var targetMatch, lessenMatch string
	b := &entry.Breakdown
	err := rows.Scan(
		&entry.ExerciseID,
		&entry.ExerciseName,
		&b.Base,
		&b.TargetBonus,
		&targetMatch,
		&b.LessenPenalty,
		&lessenMatch,
		&b.IntensityAdjustment,
		&b.GoalAdjustment,
		&b.IncludeBoost,
		&b.Raw,
		&b.Total,
	)
	if err != nil {
		return attribution.ScoreEntry{}, fmt.Errorf("scan breakdown: %w", err)
	}
	b.TargetMatch = attribution.MatchKind(targetMatch)
	b.LessenMatch = attribution.MatchKind(lessenMatch)
	return entry, nil
}
