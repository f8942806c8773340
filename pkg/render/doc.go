// Package render groups the output formats for a dependency graph.
//
// # Subpackages
//
//   - [tree]: indented text forest, the default output
//   - [nodelink]: Graphviz DOT and SVG node-link diagrams
//
// Structured JSON and YAML exports live in package io.
//
// [tree]: github.com/matzehuels/sitetree/pkg/render/tree
// [nodelink]: github.com/matzehuels/sitetree/pkg/render/nodelink
package render
