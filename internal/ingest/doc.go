// Package ingest tokenizes raw export files into ordered column names and
// string records for the analysis pipeline. It understands delimited text
// and Excel workbooks; everything past tokenization (detection, parsing,
// aggregation) lives in the report package.
package ingest
