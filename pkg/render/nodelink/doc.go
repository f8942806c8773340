// Package nodelink renders dependency graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be written as is and processed with external
// Graphviz tools.
//
// # Options
//
//   - Detailed: node labels include the installed version and edge labels the
//     raw requirement constraint, marker included.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], a WebAssembly build of
// Graphviz, so no system Graphviz installation is needed.
package nodelink
