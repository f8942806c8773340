package dag

import (
	"cmp"
	"errors"
	"maps"
	"slices"
)

var (
	// ErrEmptyVersion is returned by [NewDistributionMeta] when the installed
	// version is empty. Every installed distribution has a version.
	ErrEmptyVersion = errors.New("installed version must not be empty")

	// ErrGraphHasCycle is returned by [DAG.Validate] when installed
	// distributions depend on each other in a loop. Cycles are detected using
	// depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// RequiredDistribution is one dependency declaration of a distribution.
//
// Equality is over the pair (Name, RequiredVersion), so the same target
// declared twice with different markers yields two distinct values:
//
//	numpy >=1.22.4; python_version < "3.11"
//	numpy >=1.26.0; python_version >= "3.12"
type RequiredDistribution struct {
	Name            string // Normalized name of the required distribution
	RequiredVersion string // Raw constraint text, environment marker included
}

// Requirements is a set of dependency declarations.
// The zero value is not usable for Add; use make or [NewRequirements].
type Requirements map[RequiredDistribution]struct{}

// NewRequirements returns a set holding reqs, with duplicates collapsed.
func NewRequirements(reqs ...RequiredDistribution) Requirements {
	s := make(Requirements, len(reqs))
	for _, r := range reqs {
		s.Add(r)
	}
	return s
}

// Add inserts r and reports whether it was not already present.
func (s Requirements) Add(r RequiredDistribution) bool {
	if _, ok := s[r]; ok {
		return false
	}
	s[r] = struct{}{}
	return true
}

// Has reports whether r is in the set.
func (s Requirements) Has(r RequiredDistribution) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of distinct declarations.
func (s Requirements) Len() int { return len(s) }

// Sorted returns the declarations ordered by name, then by raw constraint.
// Map iteration order is random, so every consumer that prints or serializes
// dependencies goes through Sorted.
func (s Requirements) Sorted() []RequiredDistribution {
	return slices.SortedFunc(maps.Keys(s), func(a, b RequiredDistribution) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.RequiredVersion, b.RequiredVersion))
	})
}

// DistributionMeta is what the graph knows about one installed distribution.
type DistributionMeta struct {
	InstalledVersion string
	Dependencies     Requirements // Never nil when built with NewDistributionMeta
}

// NewDistributionMeta validates and builds a DistributionMeta.
// A nil deps set is replaced by an empty one.
func NewDistributionMeta(installedVersion string, deps Requirements) (DistributionMeta, error) {
	if installedVersion == "" {
		return DistributionMeta{}, ErrEmptyVersion
	}
	if deps == nil {
		deps = Requirements{}
	}
	return DistributionMeta{InstalledVersion: installedVersion, Dependencies: deps}, nil
}

// DAG maps normalized distribution names to their metadata.
//
// Despite the name, nothing prevents installed distributions from depending
// on each other in a loop; use [DAG.Validate] to check. A DAG is built once
// by a single owner and only read afterwards. It is not safe for concurrent
// mutation.
type DAG struct {
	nodes map[string]DistributionMeta
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{nodes: make(map[string]DistributionMeta)}
}

// Set stores meta under name. An existing entry is overwritten (last write
// wins) and Set reports true so callers can log the collision.
func (d *DAG) Set(name string, meta DistributionMeta) (replaced bool) {
	_, replaced = d.nodes[name]
	if meta.Dependencies == nil {
		meta.Dependencies = Requirements{}
	}
	d.nodes[name] = meta
	return replaced
}

// Node returns the metadata stored under name and true, or the zero value
// and false when no distribution of that name is installed.
func (d *DAG) Node(name string) (DistributionMeta, bool) {
	m, ok := d.nodes[name]
	return m, ok
}

// Has reports whether a distribution named name is installed.
func (d *DAG) Has(name string) bool {
	_, ok := d.nodes[name]
	return ok
}

// Names returns every installed distribution name in sorted order.
func (d *DAG) Names() []string {
	return slices.Sorted(maps.Keys(d.nodes))
}

// NodeCount returns the number of installed distributions.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of dependency declarations across all nodes,
// including declarations whose target is not installed.
func (d *DAG) EdgeCount() int {
	n := 0
	for _, m := range d.nodes {
		n += m.Dependencies.Len()
	}
	return n
}

// Children returns the declarations of name in sorted order.
// Returns nil if name is not installed or declares nothing.
func (d *DAG) Children(name string) []RequiredDistribution {
	m, ok := d.nodes[name]
	if !ok || m.Dependencies.Len() == 0 {
		return nil
	}
	return m.Dependencies.Sorted()
}

// Referenced returns the set of names that at least one node depends on,
// regardless of which node declares them or whether they are installed.
func (d *DAG) Referenced() map[string]struct{} {
	refs := make(map[string]struct{})
	for _, m := range d.nodes {
		for r := range m.Dependencies {
			refs[r.Name] = struct{}{}
		}
	}
	return refs
}

// Roots returns installed distributions that no other distribution depends
// on: the top-level packages of the environment. The result is sorted.
// Returns nil for an empty graph.
func (d *DAG) Roots() []string {
	refs := d.Referenced()
	var roots []string
	for name := range d.nodes {
		if _, ok := refs[name]; !ok {
			roots = append(roots, name)
		}
	}
	slices.Sort(roots)
	return roots
}

// Missing returns the sorted names that are depended on but not installed.
func (d *DAG) Missing() []string {
	var missing []string
	for name := range d.Referenced() {
		if !d.Has(name) {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// Validate returns ErrGraphHasCycle if installed distributions depend on
// each other in a loop, nil otherwise. Edges to distributions that are not
// installed end the search along that path.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (d *DAG) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(name string)
	dfs = func(name string) {
		color[name] = gray
		for r := range d.nodes[name].Dependencies {
			if !d.Has(r.Name) {
				continue
			}
			switch color[r.Name] {
			case white:
				dfs(r.Name)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[name] = black
	}

	for _, name := range d.Names() {
		if color[name] == white {
			dfs(name)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
