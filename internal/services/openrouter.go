package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-matcher/internal/config"
)

type openRouterService struct {
	apiKey  string
	model   string
	client  *resty.Client
	prompts *PromptBuilder
}

func NewOpenRouterService(cfg config.ProviderConfig, timeout time.Duration, prompts *PromptBuilder) FeedbackService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(providerTimeout(timeout))

	return &openRouterService{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  client,
		prompts: prompts,
	}
}

// RequestFeedback implements FeedbackService.
func (s *openRouterService) RequestFeedback(ctx context.Context, resumeText, jdText string) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "user", "content": s.prompts.BuildFeedbackPrompt(resumeText, jdText)},
			},
			"max_tokens": feedbackMaxTokens,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFeedbackUnavailable, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", ErrFeedbackUnavailable, resp.StatusCode(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: no choices in response", ErrFeedbackUnavailable)
	}

	return content.String(), nil
}
