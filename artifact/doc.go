// Package artifact serializes a solved trajectory to its two external
// forms: the persisted n×6 float32 binary table consumers index
// directly, and a human-readable CSV export (spec §6).
//
// The CSV path is grounded on pthm-soup's telemetry.OutputManager
// (_examples/pthm-soup/telemetry/output.go), which marshals struct
// slices through github.com/gocarina/gocsv with `csv:"..."` struct
// tags and wraps every I/O error with a one-line %w context. The
// binary path has no equivalent in the pack; see DESIGN.md for why it
// stays on encoding/binary.
package artifact
