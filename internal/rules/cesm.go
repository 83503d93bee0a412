package rules

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/fortcfg/internal/ctxlog"
	"github.com/vk/fortcfg/internal/resolve"
)

// cesmMacroFileName is the fixed name of the externally generated flags
// file under the build output directory.
const cesmMacroFileName = "Macros.make"

// includeCESMMacros includes the externally generated macro file when the
// selected build type is a CESM variant. The match is a substring check on
// the canonical (uppercased) build-type name, covering both the base and
// debug variants. The file's contents are opaque; this only triggers
// inclusion, it never parses them.
func includeCESMMacros(ctx context.Context, b *resolve.Builder, buildDir string) error {
	if !strings.Contains(strings.ToUpper(string(b.BuildType())), "CESM") {
		return nil
	}

	path := filepath.Join(buildDir, cesmMacroFileName)
	ctxlog.FromContext(ctx).Debug("Including externally generated macro file.", "path", path)
	return b.IncludeMacroFile(path)
}
