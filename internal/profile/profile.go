package profile

// Name identifies a build profile. Unrecognized names are accepted without
// validation; they simply match no rule branch and carry empty flags.
type Name string

// The eight canonical build profiles.
const (
	None           Name = "None"
	Debug          Name = "Debug"
	Release        Name = "Release"
	RelWithDebInfo Name = "RelWithDebInfo"
	MinSizeRel     Name = "MinSizeRel"
	Harsh          Name = "Harsh"
	Cesm           Name = "Cesm"
	CesmDebug      Name = "Cesm_Debug"
)

// CanonicalNames lists the canonical profiles in their conventional order.
var CanonicalNames = []Name{None, Debug, Release, RelWithDebInfo, MinSizeRel, Harsh, Cesm, CesmDebug}

// Flags holds the independent Fortran and C flag strings of one profile.
type Flags struct {
	Fortran string
	C       string
}

// Set is the mutable collection of per-profile flags for one configuration
// run. It is seeded with defaults, optionally overridden by the user, then
// mutated by the rule table during resolution.
type Set struct {
	flags map[Name]Flags
}

// Defaults returns a Set seeded with the built-in flags of each canonical
// profile. Harsh and the CESM profiles start empty: Harsh is populated by
// the rule table, the CESM profiles by an externally generated macro file.
func Defaults() *Set {
	return &Set{flags: map[Name]Flags{
		None:           {},
		Debug:          {Fortran: "-g", C: "-g"},
		Release:        {Fortran: "-O3", C: "-O3 -DNDEBUG"},
		RelWithDebInfo: {Fortran: "-O2 -g", C: "-O2 -g -DNDEBUG"},
		MinSizeRel:     {Fortran: "-Os", C: "-Os -DNDEBUG"},
		Harsh:          {},
		Cesm:           {},
		CesmDebug:      {},
	}}
}

// Flags returns the flag pair for the named profile. Unknown names yield
// the zero value.
func (s *Set) Flags(name Name) Flags {
	return s.flags[name]
}

// SetFlags replaces the flag pair for the named profile.
func (s *Set) SetFlags(name Name, f Flags) {
	s.flags[name] = f
}

// Apply replaces profile flags with the given user overrides. An override
// only touches the language strings it actually sets.
func (s *Set) Apply(overrides []Override) {
	for _, o := range overrides {
		current := s.flags[o.Profile]
		if o.Fortran != nil {
			current.Fortran = *o.Fortran
		}
		if o.C != nil {
			current.C = *o.C
		}
		s.flags[o.Profile] = current
	}
}

// Override is one user-supplied profile replacement, decoded from the HCL
// override file. Nil fields mean the attribute was not set.
type Override struct {
	Profile Name
	Fortran *string
	C       *string
}
