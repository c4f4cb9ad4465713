package extractor

import (
	"bytes"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pvolkov/briefly/internal/core/domain"
)

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return "", domain.WrapError(domain.ErrExtractionIO, "open pdf", statErr)
		}
		return "", domain.WrapError(domain.ErrCorruptFile, "parse pdf", err)
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", domain.WrapError(domain.ErrCorruptFile, "extract pdf text", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", domain.WrapError(domain.ErrCorruptFile, "read pdf text", err)
	}
	return buf.String(), nil
}
