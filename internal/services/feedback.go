package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/resume-matcher/internal/config"
)

// feedbackMaxTokens caps the length of the generated narrative.
const feedbackMaxTokens = 300

type FeedbackService interface {
	RequestFeedback(ctx context.Context, resumeText, jdText string) (string, error)
}

// NewFeedbackService builds the provider selected by LLM_PROVIDER. A missing
// credential is not an error here; it surfaces on the first request.
func NewFeedbackService(cfg *config.Config) (FeedbackService, error) {
	provider := cfg.ActiveProvider()
	prompts := NewPromptBuilder()

	switch cfg.LLM.Provider {
	case "openai":
		return NewOpenAIService(provider, cfg.LLM.Timeout, prompts), nil
	case "openrouter":
		return NewOpenRouterService(provider, cfg.LLM.Timeout, prompts), nil
	case "gemini":
		return NewGeminiService(provider, cfg.LLM.Timeout, prompts), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

func providerTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return 60 * time.Second
	}
	return timeout
}
