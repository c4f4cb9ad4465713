package domain

import "io"

// Summary length bounds in output units. Values outside the range are
// clamped, never rejected.
const (
	MinSummaryLength = 50
	MaxSummaryLength = 2000
)

// Upload is a user-supplied file paired with its original name. The name
// decides the extraction format; the content is consumed exactly once.
type Upload struct {
	Filename string
	Data     io.Reader
}

// Submission is the typed input of the first pipeline stage. At least one of
// RawText or Upload must yield non-empty content after extraction and
// normalization.
type Submission struct {
	RawText    string
	Upload     *Upload
	LanguageID string
	TemplateID string
	RoleID     string
	MaxLength  int
}

// ClampMaxLength forces n into [MinSummaryLength, MaxSummaryLength].
func ClampMaxLength(n int) int {
	if n < MinSummaryLength {
		return MinSummaryLength
	}
	if n > MaxSummaryLength {
		return MaxSummaryLength
	}
	return n
}

// ExtractOptions carries per-request extraction parameters. OCRLanguage is
// the recognizer language code resolved from the submission language.
type ExtractOptions struct {
	OCRLanguage string
}

// BalanceInfo is the verbatim upstream account response, success or error
// body alike.
type BalanceInfo struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
