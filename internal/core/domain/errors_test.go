package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapErrorKeepsKindThroughLayers(t *testing.T) {
	inner := errors.New("disk gone")
	wrapped := WrapError(ErrExtractionIO, "store upload", inner)
	outer := fmt.Errorf("extract upload: %w", wrapped)

	if !IsKind(outer, ErrExtractionIO) {
		t.Fatalf("expected kind preserved through wrapping, got %v", outer)
	}
	if !errors.Is(outer, inner) {
		t.Fatalf("expected cause preserved through wrapping, got %v", outer)
	}
}

func TestWrapErrorNilPassesThrough(t *testing.T) {
	if err := WrapError(ErrCorruptFile, "parse", nil); err != nil {
		t.Fatalf("expected nil for nil cause, got %v", err)
	}
}

func TestIsExtractionError(t *testing.T) {
	for _, kind := range []error{ErrUnsupportedFormat, ErrCorruptFile, ErrExtractionIO} {
		if !IsExtractionError(WrapError(kind, "op", errors.New("x"))) {
			t.Fatalf("expected %v to classify as extraction", kind)
		}
	}
	if IsExtractionError(WrapError(ErrRateLimited, "op", errors.New("x"))) {
		t.Fatalf("generation kind must not classify as extraction")
	}
	if IsExtractionError(nil) {
		t.Fatalf("nil must not classify as extraction")
	}
}

func TestIsGenerationError(t *testing.T) {
	for _, kind := range []error{ErrGenerationTimeout, ErrUnauthorized, ErrRateLimited, ErrServiceFailure} {
		if !IsGenerationError(WrapError(kind, "op", errors.New("x"))) {
			t.Fatalf("expected %v to classify as generation", kind)
		}
	}
	for _, kind := range []error{ErrEmptyInput, ErrInvalidInput, ErrPayloadTooLarge, ErrCorruptFile} {
		if IsGenerationError(WrapError(kind, "op", errors.New("x"))) {
			t.Fatalf("%v must not classify as generation", kind)
		}
	}
}
