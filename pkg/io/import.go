package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sitetree/pkg/dag"
)

// ReadJSON decodes a graph written by [WriteJSON].
//
// Only "nodes" is read; "roots" and "missing" are derived from the graph
// and recomputed. ReadJSON returns an error if:
//   - The JSON is malformed
//   - A node has no name or no version
//   - Two nodes share a name
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.DAG, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := dag.New()
	for _, n := range data.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("node without name")
		}
		deps := make(dag.Requirements, len(n.Requires))
		for _, req := range n.Requires {
			deps.Add(dag.RequiredDistribution{Name: req.Name, RequiredVersion: req.Constraint})
		}
		meta, err := dag.NewDistributionMeta(n.Version, deps)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.Name, err)
		}
		if g.Set(n.Name, meta) {
			return nil, fmt.Errorf("node %s: duplicate name", n.Name)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
// This is a convenience wrapper around [ReadJSON].
func ImportJSON(path string) (*dag.DAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
