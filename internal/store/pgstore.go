package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/katakuxiko/qa-service/internal/model"
)

const insertQA = `INSERT INTO qa (question, answer) VALUES ($1, $2) RETURNING id, question, answer`

// PgStore — хранилище пар вопрос/ответ в Postgres
type PgStore struct {
	db *sqlx.DB
}

// NewPgStore оборачивает открытый пул и создаёт таблицу qa при необходимости
func NewPgStore(ctx context.Context, db *sqlx.DB) (*PgStore, error) {
	if err := ensureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &PgStore{db: db}, nil
}

// Save сохраняет пару в отдельной транзакции и возвращает записанную строку
func (s *PgStore) Save(ctx context.Context, question, answer string) (*model.QARecord, error) {
	var rec model.QARecord
	err := RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, insertQA, question, answer).StructScan(&rec)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: save qa pair: %w", model.ErrStorageFailed, err)
	}
	return &rec, nil
}

func (s *PgStore) Close() error {
	return s.db.Close()
}
