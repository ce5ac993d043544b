// Package report implements the SalesPulse analysis pipeline: cell
// normalization, heuristic column detection, per-day aggregation, summary
// building and diagnostic signals. The pipeline is a single synchronous
// pass over the records of one export; nothing is shared between calls.
package report
