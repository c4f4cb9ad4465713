package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pvolkov/briefly/internal/core/domain"
)

const defaultMaxLength = 300

// The transport boundary parses loose form values into typed structures
// before the pipeline runs. Malformed input fails here, not downstream.

func parseSubmission(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (domain.Submission, error) {
	// MaxBytesReader is what actually bounds the body; the ParseMultipartForm
	// argument is only the in-memory threshold before spilling to temp files.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.Submission{}, domain.WrapError(domain.ErrPayloadTooLarge, "parse multipart form", err)
		}
		return domain.Submission{}, domain.WrapError(domain.ErrInvalidInput, "parse multipart form", err)
	}

	sub := domain.Submission{
		RawText:    r.FormValue("text"),
		LanguageID: strings.TrimSpace(r.FormValue("lang")),
		TemplateID: strings.TrimSpace(r.FormValue("template")),
		RoleID:     strings.TrimSpace(r.FormValue("role")),
	}

	if sub.LanguageID == "" || sub.TemplateID == "" || sub.RoleID == "" {
		return domain.Submission{}, domain.WrapError(domain.ErrInvalidInput, "parse submission",
			errors.New("lang, template and role are required"))
	}

	maxLen, err := parseMaxLength(r.FormValue("max_len"))
	if err != nil {
		return domain.Submission{}, err
	}
	sub.MaxLength = maxLen

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		sub.Upload = &domain.Upload{Filename: header.Filename, Data: file}
	case errors.Is(err, http.ErrMissingFile):
		// text-only submission
	default:
		return domain.Submission{}, domain.WrapError(domain.ErrInvalidInput, "parse upload", err)
	}

	return sub, nil
}

func parseMaxLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultMaxLength, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.WrapError(domain.ErrInvalidInput, "parse max_len",
			fmt.Errorf("max_len must be an integer: %w", err))
	}
	return n, nil
}

func parseSummaryState(r *http.Request) (domain.SummaryState, string, error) {
	if err := r.ParseForm(); err != nil {
		return domain.SummaryState{}, "", domain.WrapError(domain.ErrInvalidInput, "parse form", err)
	}

	state := domain.SummaryState{
		Text:       r.FormValue("summary"),
		LanguageID: strings.TrimSpace(r.FormValue("lang")),
		RoleID:     strings.TrimSpace(r.FormValue("role")),
	}
	if err := state.Validate(); err != nil {
		return domain.SummaryState{}, "", err
	}
	return state, r.FormValue("direction"), nil
}

func parseResponseState(r *http.Request) (domain.ResponseState, string, error) {
	if err := r.ParseForm(); err != nil {
		return domain.ResponseState{}, "", domain.WrapError(domain.ErrInvalidInput, "parse form", err)
	}

	state := domain.ResponseState{
		Original:   r.FormValue("original"),
		Summary:    r.FormValue("summary"),
		LanguageID: strings.TrimSpace(r.FormValue("lang")),
	}
	if err := state.Validate(); err != nil {
		return domain.ResponseState{}, "", err
	}
	return state, r.FormValue("extra"), nil
}
