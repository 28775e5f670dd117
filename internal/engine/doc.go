// Package engine composes the eligibility filter and the suitability scorer
// into a single selection call.
//
// ARCHITECTURE:
//
// Select runs, in order:
//  1. filter.Filter on the caller's pool with the eligibility criteria
//  2. scoring.Score on the filtered pool with the scoring criteria
//
// Both stages are pure and synchronous. The engine adds run identity, an
// optional per-request attribution Recorder, and structured logging. It
// holds no mutable state between calls, so one Engine may serve concurrent
// requests; SelectBatch does exactly that with one Recorder per request.
//
// Context is checked before a request starts. Once started, a request runs
// to completion: the pipelines have no suspension points.
package engine
