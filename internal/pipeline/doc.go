// Package pipeline runs the two file-level operations around the core:
//
//   - [Rewrite]: preflight → read source → rewrite block → atomically write
//     destination. Either the whole output file appears or none does.
//   - [Audit]: preflight → read source → locate block → tabulate duplicates
//     → render report.
//
// Content problems (unparseable lines, duplicates) never fail a pass; only
// I/O problems, a missing block in audit mode, or cancellation do.
package pipeline
