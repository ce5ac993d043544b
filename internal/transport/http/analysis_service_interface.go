package http

import (
	"context"
	"io"

	"salescli/pkg/contracts/domain"
)

// AnalysisServiceInterface is the service surface the analysis handler
// depends on. Kept narrow so tests can stub it.
type AnalysisServiceInterface interface {
	AnalyzeReader(ctx context.Context, sourceName string, r io.Reader) (*domain.Report, error)
}
