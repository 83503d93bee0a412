// Package flagset provides the ordered, append-only collection of compiler
// command-line tokens that every build profile is composed from. It is the
// sole mutation primitive of the resolver; rule code never edits flag
// strings directly.
package flagset
