package rules

import (
	"context"

	"github.com/vk/fortcfg/internal/ctxlog"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/resolve"
	"github.com/vk/fortcfg/internal/toolchain"
)

// Options carries the run switches the rule table consults.
type Options struct {
	// NAGColour enables colorized NAG diagnostic output.
	NAGColour bool
	// BuildDir is the build output directory holding externally generated
	// macro files.
	BuildDir string
}

// ruleFunc applies one vendor's flags for one language to the accumulating
// builder.
type ruleFunc func(lang toolchain.Language, b *resolve.Builder, opts Options)

// table maps each recognized vendor to its rule function. Adding a vendor
// is a new entry here, not an edit to a conditional chain. Vendors outside
// the table contribute no flags at all.
var table = map[toolchain.Vendor]ruleFunc{
	toolchain.VendorNAG:   nagRules,
	toolchain.VendorGNU:   gnuRules,
	toolchain.VendorIBM:   xlRules,
	toolchain.VendorIntel: intelRules,
}

// Apply runs the rule table against the builder: the Fortran vendor's rules
// for Fortran, the C vendor's rules for C, the unconditional debug-symbol
// flag on both Harsh sets, and finally the conditional inclusion of the
// externally generated CESM macro file.
func Apply(ctx context.Context, b *resolve.Builder, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	id := b.Identity()

	if fn, ok := table[id.FortranVendor]; ok {
		fn(toolchain.LangFortran, b, opts)
	} else {
		logger.Debug("No Fortran rule branch matched; generic flags only.", "vendor", string(id.FortranVendor))
	}
	if fn, ok := table[id.CVendor]; ok {
		fn(toolchain.LangC, b, opts)
	}

	// Every vendor's Harsh build carries debug symbols.
	b.Profile(toolchain.LangFortran, profile.Harsh).Append("-g")
	b.Profile(toolchain.LangC, profile.Harsh).Append("-g")

	return includeCESMMacros(ctx, b, opts.BuildDir)
}

// nagRules covers the NAG Fortran compiler. NAG has no C front end, so the
// rule only fires for Fortran.
func nagRules(lang toolchain.Language, b *resolve.Builder, opts Options) {
	if lang != toolchain.LangFortran {
		return
	}

	generic := b.Generic(lang)
	generic.Append("-strict95")
	if opts.NAGColour {
		generic.Append("-colour")
	}
	// The selected build type may already carry the byte-kind flag from a
	// user override; a second occurrence would be redundant.
	if !b.Profile(lang, b.BuildType()).Contains("-kind=byte") {
		generic.Append("-kind=byte")
	}

	// NAG predates C_SIZEOF support; sources guard on this macro.
	b.Defines().Add(b.SourceDir(), string(b.BuildType()), "-DNO_C_SIZEOF")

	// Debug-line info, full runtime checks, FPE trapping, signaling-NaN
	// initialization of reals, implicit-declaration detection.
	b.Profile(lang, profile.Harsh).Append("-gline", "-C=all", "-ieee=stop", "-nan", "-u")
}

// gnuRules covers gfortran and gcc.
func gnuRules(lang toolchain.Language, b *resolve.Builder, opts Options) {
	if lang == toolchain.LangFortran {
		// -Wuninitialized and friends are a documented false-positive
		// source with gfortran, so the broad warning set excludes them.
		b.Generic(lang).Append("-Wall", "-Wextra", "-Wno-uninitialized", "-Wno-maybe-uninitialized")
		b.Profile(lang, profile.Harsh).Append(
			"-fno-common",
			"-ftrapv",
			"-ffpe-trap=invalid,zero,overflow",
			"-fcheck=all",
			"-finit-real=snan",
			"-finteger-4-integer-8",
			"-freal-4-real-8",
		)
		return
	}

	b.Generic(lang).Append("-Wall", "-Wextra", "-pedantic")
	b.Profile(lang, profile.Harsh).Append("-fno-common", "-ftrapv")
}

// xlRules covers IBM XL. XL needs no extra flags in any profile; the entry
// exists so the vendor is recognized rather than falling through.
func xlRules(lang toolchain.Language, b *resolve.Builder, opts Options) {
}

// intelRules covers the Intel Fortran compiler.
func intelRules(lang toolchain.Language, b *resolve.Builder, opts Options) {
	if lang != toolchain.LangFortran {
		return
	}

	// pFUnit relies on automatic reallocation on assignment.
	b.Generic(lang).Append("-assume", "realloc_lhs")

	b.Profile(lang, profile.Harsh).Append("-check", "all", "-traceback")
}
