// Package deepseek wraps the remote chat-completions service behind the
// generation ports. One network round trip per operation, no automatic
// retries.
package deepseek

import (
	"context"
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pvolkov/briefly/internal/core/domain"
	"github.com/pvolkov/briefly/internal/infrastructure/resilience"
)

const balancePath = "/user/balance"

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration

	// RequestsPerSecond paces our own calls to the paid upstream. Zero
	// disables pacing.
	RequestsPerSecond float64

	// InsecureSkipVerify disables TLS certificate checks. Off by default;
	// only for talking to a private gateway with self-signed certs.
	InsecureSkipVerify bool
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	exec       *resilience.Executor
}

func New(cfg Config, exec *resilience.Executor) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		limiter: limiter,
		exec:    exec,
	}
}

func (c *Client) Summarize(ctx context.Context, req domain.SummarizeRequest) (string, error) {
	return c.chat(ctx, "summarize", buildSummaryMessages(req), req.MaxLength)
}

func (c *Client) Respond(ctx context.Context, req domain.RespondRequest) (string, error) {
	return c.chat(ctx, "respond", buildResponseMessages(req), 0)
}

func (c *Client) Analyze(ctx context.Context, req domain.AnalyzeRequest) (string, error) {
	return c.chat(ctx, "analyze", buildAnalysisMessages(req), 0)
}

// Balance returns the upstream account body verbatim for any status code.
// Only transport-level failures surface as errors.
func (c *Client) Balance(ctx context.Context) (domain.BalanceInfo, error) {
	return c.getRaw(ctx, balancePath)
}

func (c *Client) chat(ctx context.Context, operation string, messages []message, maxTokens int) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	payload := map[string]any{
		"model":    c.cfg.Model,
		"messages": messages,
		"stream":   false,
	}
	if maxTokens > 0 {
		payload["max_tokens"] = maxTokens
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	err := c.execute(ctx, operation, func(ctx context.Context) error {
		return c.postJSON(ctx, "/chat/completions", payload, &response, operation)
	})
	if err != nil {
		return "", wrapGenerationError(operation, err)
	}
	if len(response.Choices) == 0 {
		return "", domain.WrapError(domain.ErrServiceFailure, operation, errNoChoices)
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func (c *Client) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	if c.exec == nil {
		return fn(ctx)
	}
	return c.exec.Execute(ctx, operation, fn, recordsBreakerFailure)
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
