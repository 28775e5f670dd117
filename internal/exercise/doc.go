// Package exercise provides the catalog record and ordinal level types shared
// by the filter and scoring pipelines.
//
// This package contains type definitions and the level ordering only. All
// other internal packages import exercise; exercise imports nothing internal.
//
// Key design constraints:
//   - Exercise records are never mutated by the engine, only filtered or wrapped
//   - Level ordering is fixed: very_low < low < moderate < high
//   - Unknown or absent levels resolve to "not allowed", never to an error
//   - Name matching uses NFC-normalized keys (see NameKey)
package exercise
