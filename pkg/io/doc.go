// Package io provides JSON and YAML export, and JSON import, for dependency
// graphs.
//
// # Format
//
// Both encodings share one document shape:
//
//	{
//	  "roots": ["app"],
//	  "nodes": [
//	    {"name": "app", "version": "1.0", "requires": [
//	      {"name": "lib-a", "constraint": ">=2.0"},
//	      {"name": "tests-only", "constraint": "; extra == \"test\""}
//	    ]},
//	    {"name": "lib-a", "version": "2.1"}
//	  ],
//	  "missing": ["tests-only"]
//	}
//
// Names are normalized. Constraints are the raw Requires-Dist text, markers
// included; a bare requirement has no "constraint" field. "missing" lists
// names that are required but not installed.
//
// # Export
//
// [WriteJSON] and [WriteYAML] write to any io.Writer. Output is sorted
// throughout, so equal graphs encode byte for byte identically.
//
// # Import
//
// [ReadJSON] and [ImportJSON] rebuild a graph from JSON, for example to render
// a snapshot taken on another machine with the sitetree --from flag.
package io
