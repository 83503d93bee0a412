package resolve

import (
	"fmt"
	"os"

	"github.com/vk/fortcfg/internal/defines"
	"github.com/vk/fortcfg/internal/flagset"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/toolchain"
)

// langFlags holds one language's accumulating flag-sets: the generic
// (always-active) set plus one set per profile.
type langFlags struct {
	generic  *flagset.FlagSet
	profiles map[profile.Name]*flagset.FlagSet
}

// Builder accumulates the state of one configuration run: flag-sets, macro
// definitions, and included external macro files. It is written by a single
// evaluator and becomes invalid once Finalize has produced the Snapshot.
type Builder struct {
	identity  toolchain.Identity
	buildType profile.Name
	sourceDir string

	fortran langFlags
	c       langFlags

	macros    []string
	defs      *defines.Store
	included  []MacroFile
	finalized bool
}

// NewBuilder creates a Builder for the given identity and selected build
// type, seeding the per-profile flag-sets from the profile Set.
func NewBuilder(id toolchain.Identity, buildType profile.Name, sourceDir string, profiles *profile.Set) *Builder {
	b := &Builder{
		identity:  id,
		buildType: buildType,
		sourceDir: sourceDir,
		fortran:   langFlags{generic: flagset.New(""), profiles: make(map[profile.Name]*flagset.FlagSet)},
		c:         langFlags{generic: flagset.New(""), profiles: make(map[profile.Name]*flagset.FlagSet)},
		defs:      defines.NewStore(),
	}
	for _, name := range profile.CanonicalNames {
		f := profiles.Flags(name)
		b.fortran.profiles[name] = flagset.New(f.Fortran)
		b.c.profiles[name] = flagset.New(f.C)
	}
	// A build type outside the canonical eight still gets flag-sets so the
	// pipeline can resolve it; they start out empty.
	if _, ok := b.fortran.profiles[buildType]; !ok {
		f := profiles.Flags(buildType)
		b.fortran.profiles[buildType] = flagset.New(f.Fortran)
		b.c.profiles[buildType] = flagset.New(f.C)
	}
	b.macros = append(b.macros, id.Macros()...)
	return b
}

// Identity returns the toolchain identity this run was detected with.
func (b *Builder) Identity() toolchain.Identity {
	return b.identity
}

// BuildType returns the selected build-type name.
func (b *Builder) BuildType() profile.Name {
	return b.buildType
}

// SourceDir returns the directory scope used for injected definitions.
func (b *Builder) SourceDir() string {
	return b.sourceDir
}

// Generic returns the always-active flag-set for the given language.
func (b *Builder) Generic(lang toolchain.Language) *flagset.FlagSet {
	b.mustBeMutable()
	if lang == toolchain.LangC {
		return b.c.generic
	}
	return b.fortran.generic
}

// Profile returns the flag-set of the named profile for the given language.
func (b *Builder) Profile(lang toolchain.Language, name profile.Name) *flagset.FlagSet {
	b.mustBeMutable()
	sets := b.fortran.profiles
	if lang == toolchain.LangC {
		sets = b.c.profiles
	}
	fs, ok := sets[name]
	if !ok {
		fs = flagset.New("")
		sets[name] = fs
	}
	return fs
}

// Defines returns the scoped preprocessor definition store.
func (b *Builder) Defines() *defines.Store {
	b.mustBeMutable()
	return b.defs
}

// IncludeMacroFile reads an externally generated macro file verbatim and
// records it on the run. The content is opaque; it is never parsed.
func (b *Builder) IncludeMacroFile(path string) error {
	b.mustBeMutable()
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to include external macro file %s: %w", path, err)
	}
	b.included = append(b.included, MacroFile{Path: path, Content: string(content)})
	return nil
}

// Finalize freezes the builder and returns the immutable Snapshot handed to
// the compilation driver. The final flag string for the selected build type
// is the generic set followed by the build type's own set, preserving
// append order. Any further mutation of the builder panics.
func (b *Builder) Finalize() *Snapshot {
	b.mustBeMutable()
	b.finalized = true

	var scoped []ScopedDefinitions
	for _, scope := range b.defs.Scopes() {
		scoped = append(scoped, ScopedDefinitions{
			Dir:         scope.Dir,
			Config:      scope.Config,
			Definitions: b.defs.Definitions(scope.Dir, scope.Config),
		})
	}

	snap := &Snapshot{
		Identity:     b.identity,
		BuildType:    b.buildType,
		FortranFlags: joinSets(b.fortran.generic, b.fortran.profiles[b.buildType]),
		CFlags:       joinSets(b.c.generic, b.c.profiles[b.buildType]),
		Macros:       append([]string(nil), b.macros...),
		Definitions:  scoped,
		MacroFiles:   append([]MacroFile(nil), b.included...),
	}
	return snap
}

// mustBeMutable guards against use after Finalize, which is a programmer
// error in the enclosing driver.
func (b *Builder) mustBeMutable() {
	if b.finalized {
		panic("resolve: builder used after Finalize")
	}
}

func joinSets(generic, selected *flagset.FlagSet) string {
	out := flagset.New(generic.String())
	if selected != nil {
		out.Append(selected.Tokens()...)
	}
	return out.String()
}
