package bootstrap

import (
	"fmt"
	"time"

	"github.com/pvolkov/briefly/internal/catalog"
	"github.com/pvolkov/briefly/internal/config"
	"github.com/pvolkov/briefly/internal/core/ports"
	"github.com/pvolkov/briefly/internal/core/usecase"
	"github.com/pvolkov/briefly/internal/infrastructure/extractor"
	"github.com/pvolkov/briefly/internal/infrastructure/llm/deepseek"
	"github.com/pvolkov/briefly/internal/infrastructure/resilience"
	"github.com/pvolkov/briefly/internal/infrastructure/storage/localfs"
	"github.com/pvolkov/briefly/internal/infrastructure/textproc"
	"github.com/pvolkov/briefly/internal/observability/metrics"
)

const ServiceName = "briefly-api"

type App struct {
	Config  config.Config
	Metrics *metrics.HTTPServerMetrics

	Pipeline ports.Pipeline
	Balance  ports.BalanceProvider
}

func New(cfg config.Config) (*App, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	uploads, err := localfs.New(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	m := metrics.NewHTTPServerMetrics(ServiceName)

	dispatcher := extractor.NewDispatcher(extractor.Config{
		TesseractBin:   cfg.TesseractBin,
		TranscriberBin: cfg.TranscriberBin,
	})
	dispatcher.Observe = func(format, status string) {
		m.RecordExtraction(ServiceName, format, status)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	generator := deepseek.New(deepseek.Config{
		BaseURL:            cfg.LLMBaseURL,
		APIKey:             cfg.LLMAPIKey,
		Model:              cfg.LLMModel,
		Timeout:            time.Duration(cfg.LLMTimeoutSeconds) * time.Second,
		RequestsPerSecond:  cfg.LLMRateLimitRPS,
		InsecureSkipVerify: cfg.LLMInsecureSkipVerify,
	}, executor)

	pipeline := usecase.NewPipelineUseCase(
		uploads,
		dispatcher,
		textproc.NewNormalizer(),
		generator,
		cat,
	)

	return &App{
		Config:   cfg,
		Metrics:  m,
		Pipeline: pipeline,
		Balance:  generator,
	}, nil
}
