package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/resolve"
	"github.com/vk/fortcfg/internal/toolchain"
)

// writeMacroFile puts a Macros.make file into a fresh build dir and returns
// the dir.
func writeMacroFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Macros.make"), []byte(content), 0600))
	return dir
}

func TestCESMInclusion_TriggeredByCesmBuildTypes(t *testing.T) {
	t.Parallel()

	for _, buildType := range []profile.Name{profile.Cesm, profile.CesmDebug} {
		buildType := buildType
		t.Run(string(buildType), func(t *testing.T) {
			t.Parallel()

			dir := writeMacroFile(t, "# generated\n")
			snap := resolveWith(t, "GNU", "GNU", buildType, Options{BuildDir: dir})

			require.Len(t, snap.MacroFiles, 1)
			assert.Equal(t, filepath.Join(dir, "Macros.make"), snap.MacroFiles[0].Path)
			assert.Equal(t, "# generated\n", snap.MacroFiles[0].Content)
		})
	}
}

func TestCESMInclusion_NotTriggeredByOtherBuildTypes(t *testing.T) {
	t.Parallel()

	dir := writeMacroFile(t, "# generated\n")
	snap := resolveWith(t, "GNU", "GNU", profile.Debug, Options{BuildDir: dir})

	assert.Empty(t, snap.MacroFiles)
}

func TestCESMInclusion_MissingFileIsAnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := toolchain.Detect(ctx, "Linux", "GNU", "GNU")
	b := resolve.NewBuilder(id, profile.Cesm, "src", profile.Defaults())

	err := Apply(ctx, b, Options{BuildDir: t.TempDir()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Macros.make")
}
