package extractor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// extractImage shells out to tesseract. The recognizer language comes from
// the submission's language entry.
func (d *Dispatcher) extractImage(ctx context.Context, path, ocrLang string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", domain.WrapError(domain.ErrExtractionIO, "open image", err)
	}
	if ocrLang == "" {
		ocrLang = "eng"
	}

	out, stderr, err := d.runner.Run(ctx, d.cfg.TesseractBin, path, "stdout", "-l", ocrLang)
	if err != nil {
		return "", classifyRunError("ocr image", err, stderr)
	}
	return string(out), nil
}

// extractAudio shells out to the configured transcriber, which prints the
// transcript to stdout.
func (d *Dispatcher) extractAudio(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", domain.WrapError(domain.ErrExtractionIO, "open audio", err)
	}

	out, stderr, err := d.runner.Run(ctx, d.cfg.TranscriberBin, path)
	if err != nil {
		return "", classifyRunError("transcribe audio", err, stderr)
	}
	return string(out), nil
}

// classifyRunError separates a missing or failing tool from unreadable
// input: the former is an IO failure, the latter corrupt content.
func classifyRunError(operation string, err error, stderr []byte) error {
	if errors.Is(err, exec.ErrNotFound) {
		return domain.WrapError(domain.ErrExtractionIO, operation, err)
	}
	msg := strings.TrimSpace(string(stderr))
	if msg != "" {
		return domain.WrapError(domain.ErrCorruptFile, operation, errors.New(msg))
	}
	return domain.WrapError(domain.ErrCorruptFile, operation, err)
}
