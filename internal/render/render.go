package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vk/fortcfg/internal/resolve"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Valid reports whether the format is one of the supported encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Render writes the snapshot to w in the requested format.
func Render(w io.Writer, format Format, snap *resolve.Snapshot) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(snap)
	case FormatText:
		return renderText(w, snap)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	label   = color.New(color.FgGreen).SprintFunc()
)

// renderText writes the human-readable summary.
func renderText(w io.Writer, snap *resolve.Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", heading("Toolchain"))
	fmt.Fprintf(&b, "  %s %s\n", label("os:"), snap.Identity.OSName)
	fmt.Fprintf(&b, "  %s %s\n", label("fortran vendor:"), orNone(string(snap.Identity.FortranVendor)))
	fmt.Fprintf(&b, "  %s %s\n", label("c vendor:"), orNone(string(snap.Identity.CVendor)))

	fmt.Fprintf(&b, "%s %s\n", heading("Build type"), snap.BuildType)
	fmt.Fprintf(&b, "  %s %s\n", label("fortran flags:"), snap.FortranFlags)
	fmt.Fprintf(&b, "  %s %s\n", label("c flags:"), snap.CFlags)

	fmt.Fprintf(&b, "%s %s\n", heading("Macros"), strings.Join(snap.Macros, " "))

	for _, defs := range snap.Definitions {
		fmt.Fprintf(&b, "%s %s (%s)\n", heading("Definitions"), defs.Dir, defs.Config)
		fmt.Fprintf(&b, "  %s\n", strings.Join(defs.Definitions, " "))
	}

	for _, mf := range snap.MacroFiles {
		fmt.Fprintf(&b, "%s %s (%d bytes, included verbatim)\n", heading("Macro file"), mf.Path, len(mf.Content))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func orNone(s string) string {
	if s == "" {
		return "(unrecognized)"
	}
	return s
}
