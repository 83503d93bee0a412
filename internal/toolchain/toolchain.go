package toolchain

import (
	"context"
	"strings"

	"github.com/vk/fortcfg/internal/ctxlog"
)

// Vendor is the canonical lowercase compiler-name token. The zero value
// means the vendor identifier was not recognized, which is a permissive
// fallthrough, not an error.
type Vendor string

// Canonical vendor tokens.
const (
	VendorUnknown Vendor = ""
	VendorNAG     Vendor = "nag"
	VendorGNU     Vendor = "gnu"
	VendorIBM     Vendor = "ibm"
	VendorIntel   Vendor = "intel"
)

// Language selects which compiler a rule applies to.
type Language int

// Supported compile languages.
const (
	LangFortran Language = iota
	LangC
)

// String returns the language name for logs and rendered output.
func (l Language) String() string {
	if l == LangC {
		return "C"
	}
	return "Fortran"
}

// vendorMacroPrefix is prepended to the uppercased vendor token to form the
// baseline compiler macro (e.g. CPRGNU).
const vendorMacroPrefix = "CPR"

// canonicalVendors is the fixed enumeration of recognized vendor
// identifiers. Identifiers outside this table yield VendorUnknown.
var canonicalVendors = map[string]Vendor{
	"NAG":   VendorNAG,
	"GNU":   VendorGNU,
	"XL":    VendorIBM,
	"Intel": VendorIntel,
}

// Identity describes the detected toolchain. It is established once at the
// start of a configuration run and never mutated afterwards.
type Identity struct {
	OSName        string `json:"os" yaml:"os"`
	FortranVendor Vendor `json:"fortran_vendor" yaml:"fortran_vendor"`
	CVendor       Vendor `json:"c_vendor" yaml:"c_vendor"`
}

// Detect maps the raw OS name and compiler vendor identifier strings to a
// canonical Identity. Unrecognized vendors fall through silently.
func Detect(ctx context.Context, osName, fortranID, cID string) Identity {
	logger := ctxlog.FromContext(ctx)

	id := Identity{
		OSName:        osName,
		FortranVendor: canonicalVendors[fortranID],
		CVendor:       canonicalVendors[cID],
	}
	if id.FortranVendor == VendorUnknown && fortranID != "" {
		logger.Debug("Fortran vendor identifier not in the canonical enumeration.", "id", fortranID)
	}

	logger.Debug("Toolchain identity detected.",
		"os", id.OSName,
		"fortran_vendor", string(id.FortranVendor),
		"c_vendor", string(id.CVendor),
	)
	return id
}

// Macros returns the baseline always-on preprocessor macros: the uppercased
// OS token and, when the Fortran vendor was recognized, the fixed-prefix
// vendor macro. An unrecognized vendor contributes no macro at all rather
// than a sentinel value.
func (id Identity) Macros() []string {
	macros := []string{strings.ToUpper(id.OSName)}
	if id.FortranVendor != VendorUnknown {
		macros = append(macros, vendorMacroPrefix+strings.ToUpper(string(id.FortranVendor)))
	}
	return macros
}
