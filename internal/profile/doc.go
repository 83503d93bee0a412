// Package profile models the named build profiles a configuration run can
// select from: the per-profile Fortran and C flag strings, their built-in
// defaults, and the optional HCL override file users can supply to replace
// a profile's flags before resolution runs.
package profile
