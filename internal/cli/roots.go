package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitetree/pkg/render/tree"
)

// rootsCommand lists top-level distributions, one per line, as
// name==version. With --missing it lists required but absent names instead.
func (c *CLI) rootsCommand(opts *graphOpts) *cobra.Command {
	var missing bool

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "List distributions that nothing else depends on",
		Long: `List the top-level distributions of the environment: installed, but not
required by any other installed distribution. The output is sorted and
suitable as a starting point for a requirements file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			g, err := c.loadGraph(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if missing {
				for _, name := range g.Missing() {
					fmt.Fprintf(out, "%s [installed=%s]\n", name, tree.NotInstalled)
				}
				return nil
			}
			for _, name := range g.Roots() {
				meta, _ := g.Node(name)
				fmt.Fprintf(out, "%s==%s\n", name, meta.InstalledVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&missing, "missing", false, "list required distributions that are not installed")

	return cmd
}
