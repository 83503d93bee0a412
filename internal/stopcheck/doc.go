// Package stopcheck builds the vendor-aware rule that classifies a test
// process's stop code as a failure. Compilers report stop codes
// inconsistently: most propagate a nonzero stop code as a nonzero exit
// status, but NAG reports it via standard output text instead, so an
// exit-status-only harness would mark NAG failures as passes.
package stopcheck
