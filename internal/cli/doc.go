// Package cli implements the sitetree command-line interface.
//
// Run without a subcommand, sitetree scans the site-packages directories of a
// Python environment and prints the dependency tree of its installed
// distributions. The CLI is built using cobra and logs with the
// charmbracelet/log library.
//
// # Commands
//
//   - sitetree: print the dependency tree (text, json, yaml, dot or svg)
//   - roots: list top-level distributions, or missing ones with --missing
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Defaults for the source flags are read from
// $XDG_CONFIG_HOME/sitetree/config.toml (see [Config]). Flags win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    cli.ReportError(os.Stderr, err)
//	    os.Exit(1)
//	}
package cli
