package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pvolkov/briefly/internal/catalog"
	"github.com/pvolkov/briefly/internal/core/domain"
	"github.com/pvolkov/briefly/internal/core/ports"
)

// PipelineUseCase chains extraction, normalization and the three generation
// stages. Transitions are reachable only in order; forwarded state is
// validated before any network call.
type PipelineUseCase struct {
	uploads    ports.UploadStore
	extractor  ports.ContentExtractor
	normalizer ports.TextNormalizer
	generator  ports.TextGenerator
	catalog    *catalog.Catalog
}

func NewPipelineUseCase(
	uploads ports.UploadStore,
	extractor ports.ContentExtractor,
	normalizer ports.TextNormalizer,
	generator ports.TextGenerator,
	cat *catalog.Catalog,
) *PipelineUseCase {
	return &PipelineUseCase{
		uploads:    uploads,
		extractor:  extractor,
		normalizer: normalizer,
		generator:  generator,
		catalog:    cat,
	}
}

func (uc *PipelineUseCase) Submit(ctx context.Context, sub domain.Submission) (domain.SummaryState, error) {
	lang, err := uc.catalog.Language(sub.LanguageID)
	if err != nil {
		return domain.SummaryState{}, domain.WrapError(domain.ErrInvalidInput, "resolve language", err)
	}
	tpl, err := uc.catalog.Template(sub.TemplateID)
	if err != nil {
		return domain.SummaryState{}, domain.WrapError(domain.ErrInvalidInput, "resolve template", err)
	}
	role, err := uc.catalog.Role(sub.RoleID)
	if err != nil {
		return domain.SummaryState{}, domain.WrapError(domain.ErrInvalidInput, "resolve role", err)
	}

	content, err := uc.collectContent(ctx, sub, lang)
	if err != nil {
		return domain.SummaryState{}, err
	}

	normalized := uc.normalizer.Normalize(content)
	if normalized == "" {
		return domain.SummaryState{}, domain.WrapError(domain.ErrEmptyInput, "submit", fmt.Errorf("no usable content in submission"))
	}

	summary, err := uc.generator.Summarize(ctx, domain.SummarizeRequest{
		Text:      normalized,
		Language:  lang,
		Template:  tpl,
		Role:      role,
		MaxLength: domain.ClampMaxLength(sub.MaxLength),
	})
	if err != nil {
		return domain.SummaryState{}, fmt.Errorf("generate summary: %w", err)
	}

	return domain.SummaryState{
		Text:       summary,
		LanguageID: lang.ID,
		RoleID:     role.ID,
	}, nil
}

func (uc *PipelineUseCase) AdvanceToResponse(ctx context.Context, state domain.SummaryState, direction string) (domain.ResponseState, error) {
	if err := state.Validate(); err != nil {
		return domain.ResponseState{}, err
	}
	lang, err := uc.catalog.Language(state.LanguageID)
	if err != nil {
		return domain.ResponseState{}, domain.WrapError(domain.ErrInvalidInput, "resolve language", err)
	}
	role, err := uc.catalog.Role(state.RoleID)
	if err != nil {
		return domain.ResponseState{}, domain.WrapError(domain.ErrInvalidInput, "resolve role", err)
	}

	response, err := uc.generator.Respond(ctx, domain.RespondRequest{
		Summary:   state.Text,
		Direction: strings.TrimSpace(direction),
		Language:  lang,
		Role:      role,
	})
	if err != nil {
		return domain.ResponseState{}, fmt.Errorf("generate response: %w", err)
	}

	return domain.ResponseState{
		Original:   uc.normalizer.Normalize(state.Text),
		Summary:    state.Text,
		Text:       response,
		LanguageID: lang.ID,
	}, nil
}

func (uc *PipelineUseCase) AdvanceToAnalysis(ctx context.Context, state domain.ResponseState, extra string) (domain.AnalysisState, error) {
	if err := state.Validate(); err != nil {
		return domain.AnalysisState{}, err
	}
	lang, err := uc.catalog.Language(state.LanguageID)
	if err != nil {
		return domain.AnalysisState{}, domain.WrapError(domain.ErrInvalidInput, "resolve language", err)
	}

	analysis, err := uc.generator.Analyze(ctx, domain.AnalyzeRequest{
		Original: state.Original,
		Summary:  state.Summary,
		Extra:    strings.TrimSpace(extra),
		Language: lang,
	})
	if err != nil {
		return domain.AnalysisState{}, fmt.Errorf("generate analysis: %w", err)
	}

	return domain.AnalysisState{Text: analysis}, nil
}

// collectContent joins pasted text with extracted file text. The stored file
// only lives for the duration of extraction.
func (uc *PipelineUseCase) collectContent(ctx context.Context, sub domain.Submission, lang domain.Language) (string, error) {
	if sub.Upload == nil {
		return sub.RawText, nil
	}

	path, err := uc.uploads.Save(ctx, sub.Upload.Filename, sub.Upload.Data)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionIO, "store upload", err)
	}
	defer func() {
		if err := uc.uploads.Remove(ctx, path); err != nil {
			slog.Warn("upload cleanup failed", "path", path, "error", err)
		}
	}()

	extracted, err := uc.extractor.Extract(ctx, path, domain.ExtractOptions{OCRLanguage: lang.OCRLang})
	if err != nil {
		return "", fmt.Errorf("extract upload: %w", err)
	}

	if sub.RawText == "" {
		return extracted, nil
	}
	return sub.RawText + "\n" + extracted, nil
}
