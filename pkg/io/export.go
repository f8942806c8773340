package io

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sitetree/pkg/dag"
)

type graph struct {
	Roots   []string `json:"roots" yaml:"roots"`
	Nodes   []node   `json:"nodes" yaml:"nodes"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

type node struct {
	Name     string        `json:"name" yaml:"name"`
	Version  string        `json:"version" yaml:"version"`
	Requires []requirement `json:"requires,omitempty" yaml:"requires,omitempty"`
}

type requirement struct {
	Name       string `json:"name" yaml:"name"`
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
}

// toGraph flattens g into its serialized form. Nodes, requirements, roots
// and missing names are all sorted, so equal graphs encode identically.
func toGraph(g *dag.DAG) graph {
	out := graph{
		Roots:   g.Roots(),
		Nodes:   make([]node, 0, g.NodeCount()),
		Missing: g.Missing(),
	}
	if out.Roots == nil {
		out.Roots = []string{}
	}
	for _, name := range g.Names() {
		meta, _ := g.Node(name)
		n := node{Name: name, Version: meta.InstalledVersion}
		for _, r := range meta.Dependencies.Sorted() {
			n.Requires = append(n.Requires, requirement{Name: r.Name, Constraint: r.RequiredVersion})
		}
		out.Nodes = append(out.Nodes, n)
	}
	return out
}

// WriteJSON encodes a dependency graph as indented JSON and writes it to w.
// The output can be read back with [ReadJSON]. Constraint operators such as
// ">=" are written as is rather than HTML-escaped.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes a dependency graph as YAML and writes it to w.
// The document has the same shape as [WriteJSON] output.
func WriteYAML(g *dag.DAG, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
