package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/resume-matcher/internal/config"
)

type geminiService struct {
	apiKey    string
	modelName string
	baseURL   string
	timeout   time.Duration
	prompts   *PromptBuilder

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiService defers client creation to the first request so the
// server can start without a key.
func NewGeminiService(cfg config.ProviderConfig, timeout time.Duration, prompts *PromptBuilder) FeedbackService {
	return &geminiService{
		apiKey:    cfg.APIKey,
		modelName: cfg.Model,
		baseURL:   cfg.BaseURL,
		timeout:   providerTimeout(timeout),
		prompts:   prompts,
	}
}

// getClient builds the client once it succeeds. A failed attempt is retried
// on the next request.
func (g *geminiService) getClient() (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: g.timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return nil, err
	}

	g.client = client
	return client, nil
}

// RequestFeedback implements FeedbackService.
func (g *geminiService) RequestFeedback(ctx context.Context, resumeText, jdText string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	client, err := g.getClient()
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		g.modelName,
		genai.Text(g.prompts.BuildFeedbackPrompt(resumeText, jdText)),
		&genai.GenerateContentConfig{MaxOutputTokens: feedbackMaxTokens},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFeedbackUnavailable, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrFeedbackUnavailable)
	}

	return resp.Text(), nil
}
