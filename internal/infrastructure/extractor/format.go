package extractor

import (
	"path/filepath"
	"strings"
)

// Format is the closed set of recognized upload formats. Anything not
// matched falls back to plain text and is read verbatim; the fallback is
// never an error by itself.
type Format int

const (
	FormatPlaintext Format = iota
	FormatPDF
	FormatSlides
	FormatSpreadsheet
	FormatImage
	FormatAudio
	FormatWebpage
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatSlides:
		return "slides"
	case FormatSpreadsheet:
		return "spreadsheet"
	case FormatImage:
		return "image"
	case FormatAudio:
		return "audio"
	case FormatWebpage:
		return "webpage"
	default:
		return "plaintext"
	}
}

func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".pptx":
		return FormatSlides
	case ".xlsx":
		return FormatSpreadsheet
	case ".png", ".jpg", ".jpeg":
		return FormatImage
	case ".wav", ".mp3", ".flac":
		return FormatAudio
	case ".html", ".htm":
		return FormatWebpage
	default:
		return FormatPlaintext
	}
}
