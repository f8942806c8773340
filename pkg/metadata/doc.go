// Package metadata parses the header of Python core metadata files
// (METADATA in a .dist-info directory, PKG-INFO in an .egg-info one).
//
// # Overview
//
// A metadata file is an RFC 822 style header followed by a free-text
// description. Only three header fields matter for a dependency graph:
//
//	Name: Sample_Package
//	Version: 0.0.1
//	Requires-Dist: pyarrow>=10.0.1; extra == "pyarrow"
//
// The grammar works one line at a time. Each line is matched against the
// three productions with a keyword anchored at the start of the line; any
// other line is ignored, which is how unknown header fields and stray text
// are tolerated.
//
// # Names
//
// Distribution names are compared after [NormalizeName], which follows the
// Python packaging name-normalization rule.
//
// # Constraints
//
// A requirement keeps its raw constraint text, environment marker included.
// Nothing here decides whether an installed version satisfies a constraint or
// whether a marker applies; [ValidateConstraint] only checks the text is well
// formed.
//
// # Building nodes
//
// [Build] consumes the header lines of one distribution and returns its
// normalized name and a [dag.DistributionMeta] ready for [dag.DAG.Set].
//
// [dag.DistributionMeta]: github.com/matzehuels/sitetree/pkg/dag.DistributionMeta
// [dag.DAG.Set]: github.com/matzehuels/sitetree/pkg/dag.DAG.Set
package metadata
