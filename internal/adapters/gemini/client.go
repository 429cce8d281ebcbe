// Package gemini provides an adapter for the Gemini generative API.
// It implements the TextGenerator port by sending composed prompts to a
// primary model and falling back to a cheaper model when the primary is
// rate-limited or unavailable.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const defaultTimeout = 25 * time.Second

var errEmptyResponse = errors.New("gemini: empty response")

// generateFunc is the single SDK touchpoint, swapped out by tests.
type generateFunc func(ctx context.Context, model, prompt string) (string, error)

type Client struct {
	generate      generateFunc
	primaryModel  string
	fallbackModel string
	timeout       time.Duration
	log           zerolog.Logger
}

// compile-time interface assertion
var _ ports.TextGenerator = (*Client)(nil)

// NewClient builds a generator backed by the Gemini API. fallbackModel may
// be empty to disable the second attempt.
func NewClient(ctx context.Context, apiKey, model, fallbackModel string, log zerolog.Logger) (*Client, error) {
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		generate:      sdkGenerate(sdk),
		primaryModel:  model,
		fallbackModel: fallbackModel,
		timeout:       defaultTimeout,
		log:           log.With().Str("component", "gemini").Logger(),
	}, nil
}

// newClientWithGenerate is the test seam: a client whose SDK call is a stub.
func newClientWithGenerate(gen generateFunc, model, fallbackModel string) *Client {
	return &Client{
		generate:      gen,
		primaryModel:  model,
		fallbackModel: fallbackModel,
		timeout:       defaultTimeout,
		log:           zerolog.Nop(),
	}
}

func sdkGenerate(sdk *genai.Client) generateFunc {
	return func(ctx context.Context, model, prompt string) (string, error) {
		resp, err := sdk.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
}

// Generate runs the prompt against the primary model, then once against the
// fallback model when the failure is model-scoped. The timeout caps the
// whole generation, both attempts included.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.attempt(ctx, c.primaryModel, prompt)
	if err == nil {
		return text, nil
	}

	if c.fallbackModel == "" || !shouldFallback(err) {
		return "", &ports.GenerationError{Reason: classifyReason(err), Err: err}
	}

	c.log.Warn().Err(err).
		Str("model", c.primaryModel).
		Str("fallback", c.fallbackModel).
		Msg("primary model failed, trying fallback")

	text, fbErr := c.attempt(ctx, c.fallbackModel, prompt)
	if fbErr == nil {
		return text, nil
	}
	return "", &ports.GenerationError{
		Reason: classifyReason(fbErr),
		Err:    fmt.Errorf("fallback after %v: %w", err, fbErr),
	}
}

func (c *Client) attempt(ctx context.Context, model, prompt string) (string, error) {
	text, err := c.generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

// shouldFallback reports whether a second model is worth trying. Rate
// limits, upstream availability errors and empty completions are scoped to
// the model; an expired context would doom the fallback call too.
func shouldFallback(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, errEmptyResponse) || isQuotaError(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "500") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "overloaded")
}

func classifyReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ports.GenerationTimeout
	case isQuotaError(err):
		return ports.GenerationQuota
	default:
		return ports.GenerationTransport
	}
}

func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "resource_exhausted")
}
