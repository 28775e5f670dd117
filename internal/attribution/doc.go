// Package attribution records why exercises were excluded and how their
// scores were composed.
//
// A Sink is a write-only collaborator. The filter and scorer call into it
// when one is supplied, but never read from it, and no computed result
// depends on whether a Sink is present.
//
// # Lifecycle
//
// Recorder accumulates entries while enabled. It must be cleared (or a new
// Recorder created) between independent requests; otherwise entries from
// one request leak into the next. Recorder is mutex-guarded, but sharing a
// single Recorder across simultaneous requests interleaves their entries,
// so concurrent callers should use one Recorder per request.
package attribution
