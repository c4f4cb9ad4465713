package extractor

import (
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// extractWebpage strips markup from saved HTML pages, keeping the readable
// text as markdown.
func extractWebpage(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionIO, "read webpage", err)
	}

	text, err := htmltomarkdown.ConvertString(string(raw))
	if err != nil {
		return "", domain.WrapError(domain.ErrCorruptFile, "convert webpage", err)
	}
	return text, nil
}
