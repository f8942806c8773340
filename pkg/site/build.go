package site

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sitetree/pkg/dag"
	"github.com/matzehuels/sitetree/pkg/errors"
	"github.com/matzehuels/sitetree/pkg/metadata"
)

// BuildOptions configures [Build].
type BuildOptions struct {
	// BestEffort skips distributions whose metadata cannot be read or
	// parsed instead of failing the whole build.
	BestEffort bool

	// Sentinel is passed to [ReadHeader]. Defaults to [DefaultSentinel].
	Sentinel string

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Skipped records a distribution left out of a best-effort build.
type Skipped struct {
	Path string
	Err  error
}

// Result is the outcome of [Build].
type Result struct {
	Graph   *dag.DAG
	Sources int       // Metadata files seen across all directories
	Skipped []Skipped // Only populated with BuildOptions.BestEffort
}

// Build reads every metadata source in dirs and assembles the dependency
// graph. Sources are processed one at a time, each file closed before the
// next is opened, and ctx is checked between them.
//
// By default the first distribution that fails to read or parse aborts the
// build; the returned error names its file and keeps the metadata error
// code (see [errors.Is]). With BestEffort the failure is logged and the
// distribution skipped.
//
// Two sources yielding the same normalized name keep the later one.
func Build(ctx context.Context, dirs []string, opts BuildOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	res := &Result{Graph: dag.New()}
	for _, dir := range dirs {
		sources, err := Scan(dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("scanned site-packages", "dir", dir, "sources", len(sources))

		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res.Sources++

			name, meta, err := readSource(src, sentinel)
			if err != nil {
				if !opts.BestEffort {
					return nil, err
				}
				logger.Warn("skipping distribution", "path", src.Path, "err", err)
				res.Skipped = append(res.Skipped, Skipped{Path: src.Path, Err: err})
				continue
			}

			if replaced := res.Graph.Set(name, meta); replaced {
				logger.Warn("duplicate distribution, keeping last", "name", name, "path", src.Path)
			}
		}
	}
	return res, nil
}

func readSource(src Source, sentinel string) (string, dag.DistributionMeta, error) {
	lines, err := ReadHeaderFile(src.Path, sentinel)
	if err != nil {
		return "", dag.DistributionMeta{}, err
	}
	name, meta, err := metadata.Build(lines)
	if err != nil {
		return "", dag.DistributionMeta{}, errors.Wrap(errors.GetCode(err), err, "%s", src.Path)
	}
	return name, meta, nil
}
