// Package exporter writes analysis reports to disk.
//
// CSVWriter is the core CSV writing primitive, with optional UTF-8 BOM for
// Excel compatibility. ReportExporter builds on it to produce the daily
// series table, the summary key/value sheet and the full JSON report.
package exporter
