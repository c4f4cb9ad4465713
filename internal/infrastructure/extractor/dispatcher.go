// Package extractor converts stored uploads into raw text, one strategy per
// recognized format with a verbatim plain-text fallback.
package extractor

import (
	"context"

	"github.com/pvolkov/briefly/internal/core/domain"
)

type Config struct {
	// TesseractBin is the OCR command for image uploads.
	TesseractBin string
	// TranscriberBin is the speech-to-text command for audio uploads. It
	// receives the file path as its only argument and prints the transcript
	// to stdout.
	TranscriberBin string
}

func (c *Config) defaults() {
	if c.TesseractBin == "" {
		c.TesseractBin = "tesseract"
	}
	if c.TranscriberBin == "" {
		c.TranscriberBin = "whisper-cli"
	}
}

type Dispatcher struct {
	cfg    Config
	runner Runner

	// Observe, when set, records each extraction outcome for metrics.
	Observe func(format, status string)
}

func NewDispatcher(cfg Config) *Dispatcher {
	cfg.defaults()
	return &Dispatcher{cfg: cfg, runner: execRunner{}}
}

// NewDispatcherWithRunner is used by tests to stub external commands.
func NewDispatcherWithRunner(cfg Config, runner Runner) *Dispatcher {
	cfg.defaults()
	return &Dispatcher{cfg: cfg, runner: runner}
}

func (d *Dispatcher) Extract(ctx context.Context, path string, opts domain.ExtractOptions) (string, error) {
	format := DetectFormat(path)

	text, err := d.extract(ctx, format, path, opts)
	if d.Observe != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		d.Observe(format.String(), status)
	}
	return text, err
}

func (d *Dispatcher) extract(ctx context.Context, format Format, path string, opts domain.ExtractOptions) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(path)
	case FormatSlides:
		return extractSlides(path)
	case FormatSpreadsheet:
		return extractSpreadsheet(path)
	case FormatImage:
		return d.extractImage(ctx, path, opts.OCRLanguage)
	case FormatAudio:
		return d.extractAudio(ctx, path)
	case FormatWebpage:
		return extractWebpage(path)
	default:
		return extractPlaintext(path)
	}
}
