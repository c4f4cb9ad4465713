package domain

import (
	"errors"
	"fmt"
)

// Extraction failures.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrCorruptFile       = errors.New("corrupt file")
	ErrExtractionIO      = errors.New("extraction io failure")
)

// Generation service failures.
var (
	ErrGenerationTimeout = errors.New("generation timeout")
	ErrUnauthorized      = errors.New("generation unauthorized")
	ErrRateLimited       = errors.New("generation rate limited")
	ErrServiceFailure    = errors.New("generation service failure")
)

// Pipeline failures.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidInput    = errors.New("invalid input")
	ErrPayloadTooLarge = errors.New("payload too large")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// IsExtractionError reports whether err carries one of the extraction kinds.
func IsExtractionError(err error) bool {
	return IsKind(err, ErrUnsupportedFormat) || IsKind(err, ErrCorruptFile) || IsKind(err, ErrExtractionIO)
}

// IsGenerationError reports whether err carries one of the generation kinds.
func IsGenerationError(err error) bool {
	return IsKind(err, ErrGenerationTimeout) || IsKind(err, ErrUnauthorized) ||
		IsKind(err, ErrRateLimited) || IsKind(err, ErrServiceFailure)
}
