// Package services contains the application services that sit between the
// transport layer and the analysis engine. They own ingestion, orchestration,
// metrics recording and export, leaving handlers with request plumbing only.
package services
