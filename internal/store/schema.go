package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const createQATable = `CREATE TABLE IF NOT EXISTS qa (
	id BIGSERIAL PRIMARY KEY,
	question TEXT NOT NULL,
	answer TEXT NOT NULL
)`

// ensureSchema создаёт таблицу qa, если её ещё нет
func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, createQATable)
	return err
}
