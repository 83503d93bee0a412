package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/toolchain"
)

func newTestBuilder(t *testing.T, buildType profile.Name) *Builder {
	t.Helper()
	id := toolchain.Detect(context.Background(), "Linux", "GNU", "GNU")
	return NewBuilder(id, buildType, "src", profile.Defaults())
}

func TestFinalize_JoinsGenericAndSelectedProfile(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.Debug)
	b.Generic(toolchain.LangFortran).Append("-Wall")
	b.Profile(toolchain.LangFortran, profile.Debug).Append("-fcheck=all")

	snap := b.Finalize()

	// Generic tokens come first, then the selected profile's tokens, with
	// the profile default seeded from the Set.
	assert.Equal(t, "-Wall -g -fcheck=all", snap.FortranFlags)
}

func TestFinalize_OtherProfilesDoNotLeakIntoResult(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.Release)
	b.Profile(toolchain.LangC, profile.Harsh).Append("-ftrapv")

	snap := b.Finalize()

	assert.Equal(t, "-O3 -DNDEBUG", snap.CFlags)
}

func TestNewBuilder_SeedsBaselineMacros(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.None)

	snap := b.Finalize()
	assert.Equal(t, []string{"LINUX", "CPRGNU"}, snap.Macros)
}

func TestNewBuilder_UnrecognizedBuildTypeGetsEmptySets(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, "Custom")

	snap := b.Finalize()
	assert.Empty(t, snap.FortranFlags)
	assert.Empty(t, snap.CFlags)
}

func TestFinalize_CollectsScopedDefinitions(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.Debug)
	b.Defines().Add(b.SourceDir(), string(b.BuildType()), "-DFOO", "BAR")

	snap := b.Finalize()

	require.Len(t, snap.Definitions, 1)
	assert.Equal(t, "src", snap.Definitions[0].Dir)
	assert.Equal(t, "Debug", snap.Definitions[0].Config)
	assert.Equal(t, []string{"FOO", "BAR"}, snap.Definitions[0].Definitions)
}

func TestIncludeMacroFile_ReadsContentVerbatim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Macros.make")
	require.NoError(t, os.WriteFile(path, []byte("FFLAGS += -opaque\n"), 0600))

	b := newTestBuilder(t, profile.Cesm)
	require.NoError(t, b.IncludeMacroFile(path))

	snap := b.Finalize()
	require.Len(t, snap.MacroFiles, 1)
	assert.Equal(t, path, snap.MacroFiles[0].Path)
	assert.Equal(t, "FFLAGS += -opaque\n", snap.MacroFiles[0].Content)
}

func TestIncludeMacroFile_MissingFileIsAnError(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.Cesm)

	err := b.IncludeMacroFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to include external macro file")
}

func TestBuilder_PanicsWhenUsedAfterFinalize(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, profile.Debug)
	b.Finalize()

	assert.Panics(t, func() { b.Generic(toolchain.LangFortran) })
	assert.Panics(t, func() { b.Finalize() })
}
