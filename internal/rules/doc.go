// Package rules holds the vendor- and language-specific flag rule table
// layered onto the named build profiles. Each recognized vendor maps to a
// rule function; applying the table writes into the run's flag-sets through
// the flagset composer and never mutates flag strings directly.
//
// Generic (always-active) rules are restricted to flags that cannot alter
// generated-code semantics, such as warnings. Flags that can (traps, runtime
// checks, kind auto-promotion) are confined to the opt-in Harsh profile so
// default and release builds stay behaviorally unaffected while CI-style
// builds surface latent undefined behavior.
package rules
