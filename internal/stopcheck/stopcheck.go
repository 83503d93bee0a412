package stopcheck

import (
	"regexp"

	"github.com/vk/fortcfg/internal/toolchain"
)

// Registrar is the external test harness surface a rule installs its
// failure-matching pattern into, once per named test.
type Registrar interface {
	AddFailurePattern(testName, pattern string)
}

// Rule classifies a finished test as failed. A rule is reusable across
// tests; Install registers any output pattern the harness needs, and Failed
// applies the same classification directly.
type Rule interface {
	Install(testName string, reg Registrar)
	Failed(exitCode int, output string) bool
}

// nagStopPattern matches NAG's textual stop-code report: the literal
// "STOP:" followed by a single digit 1-9.
//
// TODO: stop codes >= 10 are not covered and escape classification as
// failures; widen the pattern once the intended semantics are confirmed.
const nagStopPattern = `STOP: [1-9]\b`

var nagStopRe = regexp.MustCompile(nagStopPattern)

// table keys each vendor that needs special treatment to its rule. Vendors
// absent from the table rely entirely on exit status.
var table = map[toolchain.Vendor]Rule{
	toolchain.VendorNAG: nagRule{},
}

// For returns the stop-failure rule for the given vendor.
func For(vendor toolchain.Vendor) Rule {
	if rule, ok := table[vendor]; ok {
		return rule
	}
	return exitStatusRule{}
}

// nagRule classifies on output text: a matching stop-code report marks the
// test failed regardless of the reported exit code.
type nagRule struct{}

func (nagRule) Install(testName string, reg Registrar) {
	reg.AddFailurePattern(testName, nagStopPattern)
}

func (nagRule) Failed(exitCode int, output string) bool {
	if nagStopRe.MatchString(output) {
		return true
	}
	return exitCode != 0
}

// exitStatusRule is the no-op rule for vendors whose nonzero stop codes
// already propagate as a nonzero exit status.
type exitStatusRule struct{}

func (exitStatusRule) Install(testName string, reg Registrar) {}

func (exitStatusRule) Failed(exitCode int, output string) bool {
	return exitCode != 0
}
