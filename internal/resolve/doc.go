// Package resolve owns the configuration-builder object that is threaded by
// reference through the resolution pipeline, and the immutable Snapshot it
// produces for the compilation driver. The builder replaces the hidden
// global flag/definition state a configuration script would use, while
// preserving append-order semantics.
package resolve
