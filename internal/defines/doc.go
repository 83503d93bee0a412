// Package defines provides the append-only store of preprocessor macro
// definitions scoped to a (directory, configuration) pair. Rules that need
// scoped macros inject them here; nothing ever removes a definition.
package defines
