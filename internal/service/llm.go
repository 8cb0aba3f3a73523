package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/qa-service/internal/config"
	"github.com/katakuxiko/qa-service/internal/model"
	"github.com/katakuxiko/qa-service/internal/util"
)

// сколько рун вопроса попадает в debug-лог
const logQuestionRunes = 200

// LLMClient — клиент для OpenAI совместимого chat-completion API
type LLMClient struct {
	client    *openai.Client
	chatName  string
	maxTokens int
	logger    zerolog.Logger
}

// NewLLMClient создаёт клиент с настройками из config. Каждый запрос
// ограничен cfg.Timeout, успехом считается только ответ 200.
func NewLLMClient(cfg config.OpenAIConfig, logger zerolog.Logger) *LLMClient {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	oaiCfg.BaseURL = cfg.BaseURL
	oaiCfg.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: okOnlyTransport{next: http.DefaultTransport},
	}

	return &LLMClient{
		client:    openai.NewClientWithConfig(oaiCfg),
		chatName:  cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger.With().Str("component", "llm").Logger(),
	}
}

// FetchAnswer отправляет вопрос единственным user-сообщением и возвращает
// обрезанный текст первого варианта ответа
func (l *LLMClient) FetchAnswer(ctx context.Context, question string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: l.chatName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens: l.maxTokens,
	}
	l.logger.Debug().
		Str("model", req.Model).
		Int("max_tokens", req.MaxTokens).
		Str("question", util.TruncateRunes(question, logQuestionRunes)).
		Msg("sending chat completion request")

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		l.logger.Debug().Int("status", statusCode(err)).Msg("received chat completion response")
		l.logger.Error().Err(err).Msg("chat completion failed")
		return "", fmt.Errorf("%w: create chat completion: %w", model.ErrProviderFailed, err)
	}
	l.logger.Debug().Int("status", http.StatusOK).Int("choices", len(resp.Choices)).Msg("received chat completion response")

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", model.ErrProviderFailed)
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("%w: empty completion", model.ErrProviderFailed)
	}
	return answer, nil
}

// ListModels возвращает список моделей, доступных по ключу
func (l *LLMClient) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list models: %w", model.ErrProviderFailed, err)
	}
	return resp.Models, nil
}

// statusCode достаёт HTTP статус провайдера из ошибки; 0, если ответа не было
func statusCode(err error) int {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
