// Package dag holds the dependency graph of an installed Python environment.
//
// # Overview
//
// Every installed distribution becomes one entry of a [DAG], keyed by its
// normalized name and carrying a [DistributionMeta]: the installed version and
// the set of [RequiredDistribution] values parsed from its Requires-Dist lines.
//
// Edges are implicit. A requirement names its target distribution, and the
// target may or may not be installed; the graph never refuses a declaration
// whose target is missing.
//
// # Basic Usage
//
//	g := dag.New()
//	meta, _ := dag.NewDistributionMeta("2.32.3", dag.NewRequirements(
//	    dag.RequiredDistribution{Name: "urllib3", RequiredVersion: "<3,>=1.21.1"},
//	))
//	g.Set("requests", meta)
//
//	for _, root := range g.Roots() {
//	    fmt.Println(root)
//	}
//
// # Roots
//
// [DAG.Roots] returns the installed distributions nothing else depends on,
// which is what a user installed explicitly in most environments.
//
// # Cycles
//
// Python environments can contain dependency loops. [DAG.Validate] reports
// them with [ErrGraphHasCycle]; renderers handle them without looping forever.
//
// # Concurrency
//
// A DAG is assembled once and read afterwards. Concurrent readers are safe
// once assembly has finished; concurrent writers are not.
package dag
