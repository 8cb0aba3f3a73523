package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katakuxiko/qa-service/internal/model"
)

// QAService — получение ответа и сохранение пары
type QAService struct {
	provider AnswerProvider
	store    QAStore
	logger   zerolog.Logger
}

func NewQAService(provider AnswerProvider, store QAStore, logger zerolog.Logger) *QAService {
	return &QAService{provider: provider, store: store, logger: logger}
}

// Ask fetches an answer and persists it. The returned error wraps either
// model.ErrProviderFailed or model.ErrStorageFailed; nothing is stored when
// the provider fails.
func (s *QAService) Ask(ctx context.Context, question string) (*model.QARecord, error) {
	answer, err := s.provider.FetchAnswer(ctx, question)
	if err != nil {
		if !errors.Is(err, model.ErrProviderFailed) {
			err = fmt.Errorf("%w: %w", model.ErrProviderFailed, err)
		}
		return nil, err
	}
	s.logger.Debug().Int("answer_len", len(answer)).Msg("received answer")

	rec, err := s.store.Save(ctx, question, answer)
	if err != nil {
		if !errors.Is(err, model.ErrStorageFailed) {
			err = fmt.Errorf("%w: %w", model.ErrStorageFailed, err)
		}
		return nil, err
	}
	s.logger.Info().Int64("id", rec.ID).Msg("saved QA pair")
	return rec, nil
}
