package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeOverrideFile writes an HCL override file into a temp dir and returns
// its path.
func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadOverrides_ParsesProfileBlocks(t *testing.T) {
	t.Parallel()

	path := writeOverrideFile(t, `
profile "Debug" {
  fortran_flags = "-O0 -g"
  c_flags       = "-O0"
}

profile "Release" {
  fortran_flags = "-O2"
}
`)

	overrides, err := LoadOverrides(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	require.NotNil(t, overrides[0].Fortran)
	assert.Equal(t, Name("Debug"), overrides[0].Profile)
	assert.Equal(t, "-O0 -g", *overrides[0].Fortran)
	require.NotNil(t, overrides[0].C)
	assert.Equal(t, "-O0", *overrides[0].C)

	assert.Equal(t, Name("Release"), overrides[1].Profile)
	require.NotNil(t, overrides[1].Fortran)
	assert.Equal(t, "-O2", *overrides[1].Fortran)
	assert.Nil(t, overrides[1].C)
}

func TestLoadOverrides_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	overrides, err := LoadOverrides(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestLoadOverrides_InvalidHCLIsAnError(t *testing.T) {
	t.Parallel()

	path := writeOverrideFile(t, `profile "Debug" {`)

	_, err := LoadOverrides(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadOverrides_NonStringFlagValueIsAnError(t *testing.T) {
	t.Parallel()

	path := writeOverrideFile(t, `
profile "Debug" {
  fortran_flags = ["-O0"]
}
`)

	_, err := LoadOverrides(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Debug")
}

func TestLoadOverrides_AppliedToSet(t *testing.T) {
	t.Parallel()

	path := writeOverrideFile(t, `
profile "Harsh" {
  fortran_flags = "-custom"
}
`)

	overrides, err := LoadOverrides(context.Background(), path)
	require.NoError(t, err)

	s := Defaults()
	s.Apply(overrides)
	assert.Equal(t, "-custom", s.Flags(Harsh).Fortran)
}
