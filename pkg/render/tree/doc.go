// Package tree renders a dependency graph as an indented text forest, one
// line per distribution.
//
// # Format
//
// Roots are written as "name [installed=version]". Dependencies are
// indented by four dashes per level and carry the constraint they were
// required with: "----name [required=constraint, installed=version]".
//
// # Traversal
//
// [Render] walks the graph with an explicit stack and tracks the names on the
// current path. Shared dependencies are written once per path that reaches
// them; only a name that repeats on its own path is a cycle.
package tree
