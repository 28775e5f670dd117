// Package filter implements the eligibility filter: it reduces a candidate
// exercise pool to the exercises a client is permitted to receive.
//
// RULE ORDER (fixed, later rules override earlier ones):
//
//  1. Include bypass: requested names are pulled out before level checks.
//  2. Cascading ceilings on the remainder: strength, then complexity.
//  3. Joint safety on both sets.
//  4. Merge: included survivors first, then cascaded survivors.
//  5. Exclude override on the merged set.
//
// Net priority: exclude > joint safety > include bypass > cascading ceiling.
//
// Records missing an id, name, primary muscle, strength level or complexity
// level are dropped before any rule runs and are not reported to the Sink.
package filter
