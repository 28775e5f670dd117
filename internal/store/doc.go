// Package store provides SQLite-backed storage for attribution reports.
//
// Each selection run writes one row to runs plus its children:
//   - exclusions: one row per (exercise, reason) the filter recorded
//   - score_breakdowns: one row per scored exercise, in ranked order
//
// Runs are append-only. Writing a run ID that already exists is a no-op,
// so retrying a failed CLI invocation never duplicates rows.
//
// All reads order by the recorded sequence (runs.seq, exclusions.seq,
// score_breakdowns.rank), never by wall time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
