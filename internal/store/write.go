package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/fitrank/internal/attribution"
)

// Run is the summary row of one selection run.
type Run struct {
	// ID is the engine's run ID.
	ID string `json:"id"`

	// Candidates is the input pool size.
	Candidates int `json:"candidates"`

	// Eligible is the number of exercises that reached the scorer.
	Eligible int `json:"eligible"`

	// Request is the request criteria as JSON.
	Request string `json:"request"`
}

// WriteReport stores a run and its attribution report in one transaction.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: if the run ID already
// exists the call changes nothing and returns nil.
func (s *Store) WriteReport(ctx context.Context, run Run, report attribution.Report) error {
	if run.ID == "" {
		return fmt.Errorf("write report: run ID is required")
	}
	if run.Request == "" {
		run.Request = "{}"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write report: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, candidates, eligible, request)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Candidates, run.Eligible, run.Request)
	if err != nil {
		return fmt.Errorf("write report: insert run: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if inserted == 0 {
		return nil
	}

	if err := writeExclusions(ctx, tx, run.ID, report.Exclusions); err != nil {
		return err
	}
	if err := writeBreakdowns(ctx, tx, run.ID, report.Scores); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write report: commit: %w", err)
	}
	return nil
}

func writeExclusions(ctx context.Context, tx *sql.Tx, runID string, exclusions []attribution.Exclusion) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exclusions (run_id, seq, exercise_id, exercise_name, reason)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write exclusions: prepare: %w", err)
	}
	defer stmt.Close()

	for i, ex := range exclusions {
		if _, err := stmt.ExecContext(ctx, runID, i, ex.ExerciseID, ex.ExerciseName, string(ex.Reason)); err != nil {
			return fmt.Errorf("write exclusion %d: %w", i, err)
		}
	}
	return nil
}

func writeBreakdowns(ctx context.Context, tx *sql.Tx, runID string, scores []attribution.ScoreEntry) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO score_breakdowns
		(run_id, rank, exercise_id, exercise_name, base, target_bonus, target_match,
		 lessen_penalty, lessen_match, intensity_adjustment, goal_adjustment,
		 include_boost, raw, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write breakdowns: prepare: %w", err)
	}
	defer stmt.Close()

	for i, sc := range scores {
		b := sc.Breakdown
		_, err := stmt.ExecContext(ctx,
			runID,
			i,
			sc.ExerciseID,
			sc.ExerciseName,
			b.Base,
			b.TargetBonus,
			string(b.TargetMatch),
			b.LessenPenalty,
			string(b.LessenMatch),
			b.IntensityAdjustment,
			b.GoalAdjustment,
			b.IncludeBoost,
			b.Raw,
			b.Total,
		)
		if err != nil {
			return fmt.Errorf("write breakdown %d: %w", i, err)
		}
	}
	return nil
}
