package extractor

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// extractPlaintext is the fallback for unrecognized extensions: the file is
// read verbatim. Binary garbage is rejected as corrupt rather than fed into
// the generation stages.
func extractPlaintext(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionIO, "read file", err)
	}
	if !utf8.Valid(raw) {
		return "", domain.WrapError(domain.ErrCorruptFile, "read file", errors.New("content is not valid utf-8"))
	}
	return string(raw), nil
}
