// Package render writes a finalized resolution snapshot to the output
// stream, as colorized human-readable text or as machine-readable JSON or
// YAML for downstream build drivers.
package render
