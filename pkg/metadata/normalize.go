package metadata

import (
	"regexp"
	"strings"
)

var separatorRunRE = regexp.MustCompile(`[-_.]+`)

// NormalizeName converts a distribution name to its canonical form: every
// run of "-", "_" and "." becomes a single "-" and the result is lowercased.
//
//	NormalizeName("Sample_Package")              // "sample-package"
//	NormalizeName("there-is_very--complicated")  // "there-is-very-complicated"
//
// NormalizeName is idempotent and never fails.
func NormalizeName(name string) string {
	return strings.ToLower(separatorRunRE.ReplaceAllString(name, "-"))
}
