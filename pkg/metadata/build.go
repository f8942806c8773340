package metadata

import (
	"github.com/matzehuels/sitetree/pkg/dag"
	"github.com/matzehuels/sitetree/pkg/errors"
)

// Build turns the header lines of one distribution's metadata into a graph
// entry: its normalized name and its [dag.DistributionMeta].
//
// Every line goes through [Classify]. When a Name or Version line appears
// more than once the last one wins. Requirements are collected into a set
// keyed by (normalized name, raw constraint), so exact duplicates collapse and
// declarations differing only by marker stay distinct.
//
// Build fails, returning no partial node, when:
//   - no Name line was seen (code MISSING_NAME)
//   - no Version line was seen (code MISSING_VERSION)
//   - any requirement's constraint fails [ValidateConstraint]
//     (code INVALID_DEPENDENCY_CONSTRAINT)
//
// The caller must cut lines off before the free-text description; see
// site.ReadHeader.
func Build(lines []string) (string, dag.DistributionMeta, error) {
	var (
		name, version         string
		haveName, haveVersion bool
	)

	deps := make(dag.Requirements)
	for _, line := range lines {
		d, ok := Classify(line)
		if !ok {
			continue
		}
		switch d.Kind {
		case KindName:
			name, haveName = d.Name, true
		case KindVersion:
			version, haveVersion = d.Value, true
		case KindRequirement:
			deps.Add(dag.RequiredDistribution{Name: NormalizeName(d.Name), RequiredVersion: d.Value})
		}
	}

	if !haveName {
		return "", dag.DistributionMeta{}, errors.New(errors.ErrCodeMissingName, "no Name declaration found")
	}
	if !haveVersion {
		return "", dag.DistributionMeta{}, errors.New(errors.ErrCodeMissingVersion, "no Version declaration found for %s", name)
	}

	for _, r := range deps.Sorted() {
		if err := ValidateConstraint(r.RequiredVersion); err != nil {
			return "", dag.DistributionMeta{}, errors.Wrap(errors.GetCode(err), err, "%s requires %s", name, r.Name)
		}
	}

	meta, err := dag.NewDistributionMeta(version, deps)
	if err != nil {
		return "", dag.DistributionMeta{}, errors.Wrap(errors.ErrCodeMissingVersion, err, "distribution %s", name)
	}
	return NormalizeName(name), meta, nil
}
