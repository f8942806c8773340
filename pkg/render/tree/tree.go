package tree

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/sitetree/pkg/dag"
)

const (
	// NotInstalled replaces the installed version of a distribution that is
	// depended on but absent from the graph.
	NotInstalled = "Not-installed"

	// CycleMarker is appended to a line whose distribution is already on the
	// path from the root. That line is not expanded further.
	CycleMarker = " (cycle)"

	// AnyVersion is printed for a requirement without a constraint.
	AnyVersion = "Any"
)

// Options configures tree rendering.
type Options struct {
	// Indent is the number of IndentChar per depth level. Default 4.
	Indent int
	// IndentChar defaults to '-'.
	IndentChar rune
}

func (o Options) withDefaults() Options {
	if o.Indent <= 0 {
		o.Indent = 4
	}
	if o.IndentChar == 0 {
		o.IndentChar = '-'
	}
	return o
}

// frame is one pending line. leave frames pop their name off the path once
// the subtree below it has been written.
type frame struct {
	name     string
	required string
	isDep    bool
	level    int
	leave    bool
}

// Render writes one tree per root, in the given order:
//
//	app [installed=1.0]
//	----lib-a [required=>=2.0, installed=2.1]
//	--------lib-b [required=Any, installed=0.3]
//	----missing [required=<2, installed=Not-installed]
//
// Children are written in name order. A distribution that is depended on
// but not installed is written with [NotInstalled] and has no children.
// A distribution already on the path from the root is written with
// [CycleMarker] and not expanded, so rendering terminates on any graph.
func Render(w io.Writer, g *dag.DAG, roots []string, opts Options) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)
	for _, root := range roots {
		writeTree(bw, g, root, opts)
	}
	return bw.Flush()
}

// RenderNode writes the tree below a single distribution, treating it as a
// root.
func RenderNode(w io.Writer, g *dag.DAG, name string, opts Options) error {
	return Render(w, g, []string{name}, opts)
}

func writeTree(w *bufio.Writer, g *dag.DAG, root string, opts Options) {
	indent := string(opts.IndentChar)
	onPath := make(map[string]bool)
	stack := []frame{{name: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.leave {
			delete(onPath, f.name)
			continue
		}

		meta, installed := g.Node(f.name)
		cycle := onPath[f.name]

		w.WriteString(strings.Repeat(indent, f.level))
		w.WriteString(formatNode(f, meta, installed))
		if cycle {
			w.WriteString(CycleMarker)
		}
		w.WriteByte('\n')

		if cycle || !installed {
			continue
		}

		onPath[f.name] = true
		stack = append(stack, frame{name: f.name, leave: true})
		children := g.Children(f.name)
		for _, c := range slices.Backward(children) {
			stack = append(stack, frame{
				name:     c.Name,
				required: c.RequiredVersion,
				isDep:    true,
				level:    f.level + opts.Indent,
			})
		}
	}
}

func formatNode(f frame, meta dag.DistributionMeta, installed bool) string {
	version := NotInstalled
	if installed {
		version = meta.InstalledVersion
	}
	if !f.isDep {
		return f.name + " [installed=" + version + "]"
	}
	required := f.required
	if required == "" {
		required = AnyVersion
	}
	return f.name + " [required=" + required + ", installed=" + version + "]"
}
