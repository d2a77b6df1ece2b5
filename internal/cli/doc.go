// Package cli wires together the Cobra command tree for the ewgpal binary.
//
// It defines the root command and all subcommands (render, list, formats,
// config, version), binds flags, merges configuration, runs the
// load-group-render-write pipeline, and returns deterministic exit codes:
// 0 success, 2 usage error, 3 invalid world directory, 4 render or output
// failure.
package cli
