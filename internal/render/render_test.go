package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/resolve"
	"github.com/vk/fortcfg/internal/toolchain"
	"gopkg.in/yaml.v3"
)

func sampleSnapshot() *resolve.Snapshot {
	return &resolve.Snapshot{
		Identity: toolchain.Identity{
			OSName:        "Linux",
			FortranVendor: toolchain.VendorGNU,
			CVendor:       toolchain.VendorGNU,
		},
		BuildType:    profile.Harsh,
		FortranFlags: "-Wall -g",
		CFlags:       "-Wall -ftrapv -g",
		Macros:       []string{"LINUX", "CPRGNU"},
		Definitions: []resolve.ScopedDefinitions{
			{Dir: "src", Config: "Harsh", Definitions: []string{"FOO"}},
		},
	}
}

func TestRender_Text(t *testing.T) {
	// Disable ANSI sequences so assertions see plain text. Mutates package
	// state in fatih/color, so no t.Parallel here.
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, sampleSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "fortran vendor: gnu")
	assert.Contains(t, out, "Build type Harsh")
	assert.Contains(t, out, "fortran flags: -Wall -g")
	assert.Contains(t, out, "Macros LINUX CPRGNU")
	assert.Contains(t, out, "Definitions src (Harsh)")
}

func TestRender_TextUnrecognizedVendor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	snap := sampleSnapshot()
	snap.Identity.FortranVendor = toolchain.VendorUnknown

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, snap))

	assert.Contains(t, buf.String(), "fortran vendor: (unrecognized)")
}

func TestRender_JSONRoundTrips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleSnapshot()))

	var decoded resolve.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleSnapshot(), decoded)
}

func TestRender_YAMLRoundTrips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleSnapshot()))

	var decoded resolve.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleSnapshot(), decoded)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), sampleSnapshot())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestFormat_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, FormatText.Valid())
	assert.True(t, FormatJSON.Valid())
	assert.True(t, FormatYAML.Valid())
	assert.False(t, Format("xml").Valid())
}
