package ports

import (
	"context"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// Pipeline exposes the stage transitions. Each call is stateless at rest:
// the prior stage's output arrives from the client and is validated fresh.
type Pipeline interface {
	Submit(ctx context.Context, sub domain.Submission) (domain.SummaryState, error)
	AdvanceToResponse(ctx context.Context, state domain.SummaryState, direction string) (domain.ResponseState, error)
	AdvanceToAnalysis(ctx context.Context, state domain.ResponseState, extra string) (domain.AnalysisState, error)
}
