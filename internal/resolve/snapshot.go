package resolve

import (
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/toolchain"
)

// ScopedDefinitions is one (directory, configuration) definition list in the
// Snapshot, in injection order.
type ScopedDefinitions struct {
	Dir         string   `json:"dir" yaml:"dir"`
	Config      string   `json:"config" yaml:"config"`
	Definitions []string `json:"definitions" yaml:"definitions"`
}

// MacroFile is an externally generated flags file included verbatim into
// the run. The content is opaque to the resolver.
type MacroFile struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Snapshot is the immutable result of one configuration run: the final flag
// strings for the selected build type, the always-on macros, the scoped
// preprocessor definitions, and any included external macro files. The
// compilation driver consumes it after the builder is frozen.
type Snapshot struct {
	Identity     toolchain.Identity  `json:"identity" yaml:"identity"`
	BuildType    profile.Name        `json:"build_type" yaml:"build_type"`
	FortranFlags string              `json:"fortran_flags" yaml:"fortran_flags"`
	CFlags       string              `json:"c_flags" yaml:"c_flags"`
	Macros       []string            `json:"macros" yaml:"macros"`
	Definitions  []ScopedDefinitions `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	MacroFiles   []MacroFile         `json:"macro_files,omitempty" yaml:"macro_files,omitempty"`
}
