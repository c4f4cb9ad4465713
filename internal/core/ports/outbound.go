package ports

import (
	"context"
	"io"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// TextGenerator is the contract wrapper around the remote generation
// service. Failures carry the generation error kinds and are never
// swallowed.
type TextGenerator interface {
	Summarize(ctx context.Context, req domain.SummarizeRequest) (string, error)
	Respond(ctx context.Context, req domain.RespondRequest) (string, error)
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (string, error)
}

// BalanceProvider queries the remote account balance. The response body is
// passed through verbatim for any upstream status.
type BalanceProvider interface {
	Balance(ctx context.Context) (domain.BalanceInfo, error)
}

// ContentExtractor turns a stored file into raw text, dispatching on the
// filename's extension.
type ContentExtractor interface {
	Extract(ctx context.Context, path string, opts domain.ExtractOptions) (string, error)
}

// TextNormalizer produces the canonical whitespace-collapsed form.
type TextNormalizer interface {
	Normalize(s string) string
}

// UploadStore keeps an uploaded file for the duration of extraction. Save
// must disambiguate concurrent uploads of the same filename.
type UploadStore interface {
	Save(ctx context.Context, filename string, data io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
