package cli

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitetree/pkg/dag"
	"github.com/matzehuels/sitetree/pkg/errors"
	pkgio "github.com/matzehuels/sitetree/pkg/io"
	"github.com/matzehuels/sitetree/pkg/site"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatText: true,
	formatJSON: true,
	formatYAML: true,
	formatDOT:  true,
	formatSVG:  true,
}

// validateFormat checks that f is one of validFormats.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'text', 'json', 'yaml', 'dot', or 'svg')", f)
	}
	return nil
}

// graphOpts holds the flags that select and shape the graph.
// Source flags are persistent so subcommands share them.
type graphOpts struct {
	python     string   // interpreter to query for site-packages
	paths      []string // site-packages directories; skips interpreter discovery
	from       string   // JSON snapshot to read instead of scanning
	bestEffort bool     // skip malformed distributions
	configPath string   // explicit config file
	sentinel   string   // header sentinel, config only

	format   string // output format
	output   string // output file, stdout when empty
	detailed bool   // versions and constraints in dot/svg
}

func (o *graphOpts) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.python, "python", "", "python interpreter to query (default: $VIRTUAL_ENV, then python3 or python on PATH)")
	pf.StringArrayVar(&o.paths, "path", nil, "site-packages directory to scan, repeatable (skips interpreter discovery)")
	pf.StringVar(&o.from, "from", "", "read a graph written with --format json instead of scanning")
	pf.BoolVar(&o.bestEffort, "best-effort", false, "skip distributions with malformed metadata instead of failing")
	pf.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sitetree/config.toml)")

	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "output format: text, json, yaml, dot, svg")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&o.detailed, "detailed", false, "show versions and constraints (dot, svg)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return slices.Sorted(maps.Keys(validFormats)), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolve merges the config file into o and validates the result.
func (o *graphOpts) resolve(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.apply(cmd.Flags(), cfg)
	return validateFormat(o.format)
}

// loadGraph builds the dependency graph selected by o: a JSON snapshot, the
// given site-packages directories, or those of the discovered interpreter.
func (c *CLI) loadGraph(cmd *cobra.Command, o *graphOpts) (*dag.DAG, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if o.from != "" {
		g, err := pkgio.ImportJSON(o.from)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read graph snapshot")
		}
		logger.Debug("loaded snapshot", "path", o.from, "nodes", g.NodeCount())
		return g, nil
	}

	dirs := o.paths
	if len(dirs) == 0 {
		var err error
		if dirs, err = site.Locate(ctx, o.python, logger); err != nil {
			return nil, err
		}
	}
	for _, d := range dirs {
		logger.Debug("site-packages", "dir", d)
	}

	prog := newProgress(logger)
	res, err := site.Build(ctx, dirs, site.BuildOptions{
		BestEffort: o.bestEffort,
		Sentinel:   o.sentinel,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	prog.done("Read %d distributions", res.Graph.NodeCount())

	if n := len(res.Skipped); n > 0 {
		printWarning(c.Err, "Skipped %d distributions with invalid metadata", n)
		for _, s := range res.Skipped {
			printDetail(c.Err, "%s", errors.UserMessage(s.Err))
		}
	}
	if res.Graph.NodeCount() == 0 {
		printWarning(c.Err, "No installed distributions found")
	}
	if err := res.Graph.Validate(); err != nil {
		logger.Debug("installed distributions depend on each other in a loop", "err", err)
	}
	return res.Graph, nil
}
