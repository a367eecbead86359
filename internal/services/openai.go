package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"alfredoptarigan/resume-matcher/internal/config"
)

type openAIService struct {
	apiKey  string
	model   string
	client  *openai.Client
	prompts *PromptBuilder
}

func NewOpenAIService(cfg config.ProviderConfig, timeout time.Duration, prompts *PromptBuilder) FeedbackService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: providerTimeout(timeout)}

	return &openAIService{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  openai.NewClientWithConfig(clientConfig),
		prompts: prompts,
	}
}

// RequestFeedback implements FeedbackService.
func (o *openAIService) RequestFeedback(ctx context.Context, resumeText, jdText string) (string, error) {
	if o.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: o.prompts.BuildFeedbackPrompt(resumeText, jdText)},
		},
		MaxTokens: feedbackMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFeedbackUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrFeedbackUnavailable)
	}

	return resp.Choices[0].Message.Content, nil
}
