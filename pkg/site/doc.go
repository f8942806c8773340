// Package site discovers a Python environment's installed distributions and
// builds their dependency graph.
//
// # Discovery
//
// [Locator] picks the interpreter (explicit, then $VIRTUAL_ENV, then python3
// or python on PATH) and runs it once to print site.getsitepackages().
// Callers that already know their directories skip this step.
//
// # Reading metadata
//
// [Scan] lists the METADATA and PKG-INFO files of one site-packages
// directory. [ReadHeader] yields only the header lines of a file, so the
// free-text description never reaches the grammar in package metadata.
//
// # Building the graph
//
//	res, err := site.Build(ctx, dirs, site.BuildOptions{})
//	if err != nil {
//	    return err
//	}
//	roots := res.Graph.Roots()
package site
