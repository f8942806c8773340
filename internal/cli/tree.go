package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitetree/pkg/dag"
	"github.com/matzehuels/sitetree/pkg/errors"
	pkgio "github.com/matzehuels/sitetree/pkg/io"
	"github.com/matzehuels/sitetree/pkg/render/nodelink"
	"github.com/matzehuels/sitetree/pkg/render/tree"
)

// runTree is the root command: build the graph and write it in the
// selected format.
func (c *CLI) runTree(cmd *cobra.Command, o *graphOpts) error {
	if err := o.resolve(cmd); err != nil {
		return err
	}
	g, err := c.loadGraph(cmd, o)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		return writeGraph(cmd.Context(), w, g, o)
	}
	if o.output == "" {
		return write(cmd.OutOrStdout())
	}
	if err := writeFile(o.output, write); err != nil {
		return err
	}
	printSuccess(c.Err, "Wrote %s", o.format)
	printFile(c.Err, o.output)
	printStats(c.Err, g.NodeCount(), g.EdgeCount(), len(g.Roots()))
	return nil
}

// writeGraph encodes g to w in o.format.
func writeGraph(ctx context.Context, w io.Writer, g *dag.DAG, o *graphOpts) error {
	switch o.format {
	case formatText:
		return tree.Render(w, g, g.Roots(), tree.Options{})
	case formatJSON:
		return pkgio.WriteJSON(g, w)
	case formatYAML:
		return pkgio.WriteYAML(g, w)
	case formatDOT:
		_, err := io.WriteString(w, nodelink.ToDOT(g, nodelink.Options{Detailed: o.detailed}))
		return err
	case formatSVG:
		svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: o.detailed}))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		_, err = w.Write(svg)
		return err
	}
	return validateFormat(o.format)
}

// writeFile creates path, hands it to write and closes it, reporting the
// first error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
