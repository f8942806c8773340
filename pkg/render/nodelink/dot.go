package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sitetree/pkg/dag"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds installed versions to node labels and raw constraints
	// to edge labels. When false, only names are shown.
	Detailed bool
}

// ToDOT converts a dependency graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Distributions that are depended on but not installed are drawn with dashed
// outlines and grey fill. Each declaration is one edge, so a dependency
// declared under several markers appears as parallel edges.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=gray40];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, name := range g.Names() {
		meta, _ := g.Node(name)
		label := name
		if opts.Detailed {
			label += "\n" + meta.InstalledVersion
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", name, label)
	}
	for _, name := range g.Missing() {
		label := name
		if opts.Detailed {
			label += "\nnot installed"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(missingAttrs(label), ", "))
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		for _, r := range g.Children(name) {
			if opts.Detailed && r.RequiredVersion != "" {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", name, r.Name, r.RequiredVersion)
			} else {
				fmt.Fprintf(&buf, "  %q -> %q;\n", name, r.Name)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func missingAttrs(label string) []string {
	return []string{
		fmt.Sprintf("label=%q", label),
		"style=\"rounded,filled,dashed\"",
		"fillcolor=lightgrey",
		"fontcolor=black",
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz, in process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
