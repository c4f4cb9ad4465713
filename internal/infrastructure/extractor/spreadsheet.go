package extractor

import (
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// extractSpreadsheet renders each sheet row as one space-joined line.
func extractSpreadsheet(path string) (string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return "", domain.WrapError(domain.ErrExtractionIO, "open spreadsheet", statErr)
		}
		return "", domain.WrapError(domain.ErrCorruptFile, "open spreadsheet", err)
	}
	defer book.Close()

	var b strings.Builder
	for _, sheet := range book.GetSheetList() {
		rows, err := book.GetRows(sheet)
		if err != nil {
			return "", domain.WrapError(domain.ErrCorruptFile, "read spreadsheet rows", err)
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
	}
	return b.String(), nil
}
