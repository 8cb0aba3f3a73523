package service

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/qa-service/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service/mock_service.go -package=mock_service

// AnswerProvider produces an answer for a question. Failures wrap
// model.ErrProviderFailed.
type AnswerProvider interface {
	FetchAnswer(ctx context.Context, question string) (string, error)
}

// QAStore persists QA pairs. Failures wrap model.ErrStorageFailed.
type QAStore interface {
	Save(ctx context.Context, question, answer string) (*model.QARecord, error)
}

type ModelLister interface {
	ListModels(ctx context.Context) ([]openai.Model, error)
}
