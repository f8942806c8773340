package metadata

import (
	"regexp"
	"strings"

	"github.com/matzehuels/sitetree/pkg/errors"
)

// Kind identifies which header production a line matched.
type Kind int

const (
	// KindName is a "Name: <token>" line.
	KindName Kind = iota + 1
	// KindVersion is a "Version: <pep440>" line.
	KindVersion
	// KindRequirement is a "Requires-Dist: <name> ..." line.
	KindRequirement
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindVersion:
		return "version"
	case KindRequirement:
		return "requirement"
	default:
		return "unknown"
	}
}

// Declaration is one classified header line.
//
// For KindName, Name holds the raw (unnormalized) distribution name.
// For KindVersion, Value holds the version exactly as written.
// For KindRequirement, Name holds the raw dependency name and Value the raw
// constraint text with its environment marker, see [Classify].
type Declaration struct {
	Kind  Kind
	Name  string
	Value string
}

// Grammar building blocks. The version token follows PEP 440: optional
// epoch, numeric release, then pre, post, dev and local segments.
const (
	nameToken = `[A-Za-z0-9._-]+`

	versionToken = `(?:\d+!)?\d+(?:\.\d+)*` +
		`(?:[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?\d*)?` +
		`(?:-\d+|[-_.]?(?:post|rev|r)[-_.]?\d*)?` +
		`(?:[-_.]?dev[-_.]?\d*)?` +
		`(?:\+[a-z0-9]+(?:[-_.][a-z0-9]+)*)?`

	wildcardVersionToken = `(?:\d+!)?\d+(?:\.\d+)*\.\*|` + versionToken

	comparisonClause = `(?:===|==|!=|<=|>=|~=|<|>)\s*(?:` + wildcardVersionToken + `)`
)

// Compiled once at package initialization and shared read-only afterwards.
var (
	nameLineRE        = regexp.MustCompile(`(?i)^name:\s*(` + nameToken + `)\s*$`)
	versionLineRE     = regexp.MustCompile(`(?i)^version:\s*(` + versionToken + `)\s*$`)
	requirementLineRE = regexp.MustCompile(`^Requires-Dist:\s*(` + nameToken + `)\s*(?:\[[^\]]*\])?(.*)$`)

	comparisonRE      = regexp.MustCompile(`(?i)^` + comparisonClause + `(?:\s*,\s*` + comparisonClause + `)*$`)
	directReferenceRE = regexp.MustCompile(`^@\s*\S+$`)
)

// Classify matches line against the three header productions and reports
// whether one matched. Lines that match nothing (free text, blank lines,
// other header fields, malformed Name or Version values) return false and
// are meant to be ignored.
//
// The Name and Version keywords are case-insensitive; Requires-Dist is
// case-sensitive. For requirements, any [extras] list is discarded and the
// rest of the line is kept verbatim apart from surrounding whitespace and one
// pair of parentheses around the comparison part:
//
//	Requires-Dist: pyarrow>=10.0.1; extra == "pyarrow"  → pyarrow, `>=10.0.1; extra == "pyarrow"`
//	Requires-Dist: foo[bar] (>=1.0,<2)                  → foo, `>=1.0,<2`
//
// Classify does not validate the requirement's constraint text; see
// [ValidateConstraint].
func Classify(line string) (Declaration, bool) {
	if m := nameLineRE.FindStringSubmatch(line); m != nil {
		return Declaration{Kind: KindName, Name: m[1]}, true
	}
	if m := versionLineRE.FindStringSubmatch(line); m != nil {
		return Declaration{Kind: KindVersion, Value: m[1]}, true
	}
	if m := requirementLineRE.FindStringSubmatch(line); m != nil {
		return Declaration{Kind: KindRequirement, Name: m[1], Value: rawConstraint(m[2])}, true
	}
	return Declaration{}, false
}

// rawConstraint trims the text following a requirement's name and strips
// one pair of parentheses around its comparison part. Everything else,
// including spacing before the marker, is kept as written.
func rawConstraint(rest string) string {
	s := strings.TrimSpace(rest)
	comparison, marker := splitMarker(s)
	body := strings.TrimRight(comparison, " \t")
	if len(body) >= 2 && body[0] == '(' && body[len(body)-1] == ')' {
		return strings.TrimSpace(body[1:len(body)-1]) + comparison[len(body):] + marker
	}
	return s
}

// splitMarker splits s at the first ';', which starts a PEP 508 environment
// marker. The returned marker keeps its leading ';'.
func splitMarker(s string) (comparison, marker string) {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func stripParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// ValidateConstraint checks a requirement's raw constraint text against the
// version-comparison grammar after removing its environment marker.
//
// Accepted comparison parts are:
//   - empty (a bare requirement such as "Requires-Dist: click")
//   - one or more comma-separated clauses "<op><version>" where op is one of
//     ===, ==, !=, <=, >=, ~=, <, > and version may end in ".*"
//   - a PEP 508 direct reference "@ <url>"
//
// Markers are never evaluated. Returns an error with code
// INVALID_DEPENDENCY_CONSTRAINT when the text does not match.
func ValidateConstraint(raw string) error {
	comparison, _ := splitMarker(raw)
	comparison = stripParens(strings.TrimSpace(comparison))
	switch {
	case comparison == "":
	case directReferenceRE.MatchString(comparison):
	case comparisonRE.MatchString(comparison):
	default:
		return errors.New(errors.ErrCodeInvalidDependencyConstraint, "invalid version constraint %q", raw)
	}
	return nil
}
