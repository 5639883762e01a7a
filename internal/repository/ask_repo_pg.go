package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"persona-qa/internal/domain"
)

// PgAskRepository stores ask records in Postgres.
//
// Schema:
//
//	CREATE TABLE asks (
//	    id       TEXT PRIMARY KEY,
//	    question TEXT NOT NULL,
//	    date     TIMESTAMPTZ NOT NULL
//	);
type PgAskRepository struct {
	pool *pgxpool.Pool
}

func NewPgAskRepository(pool *pgxpool.Pool) *PgAskRepository {
	return &PgAskRepository{pool: pool}
}

func (r *PgAskRepository) Add(ctx context.Context, ask domain.AskRecord) error {
	const query = `
		INSERT INTO asks (id, question, date)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, ask.ID, ask.Question, ask.Date)
	return err
}

func (r *PgAskRepository) List(ctx context.Context) ([]domain.AskRecord, error) {
	const query = `
		SELECT id, question, date
		FROM asks
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	asks := []domain.AskRecord{}
	for rows.Next() {
		var ask domain.AskRecord
		if err := rows.Scan(&ask.ID, &ask.Question, &ask.Date); err != nil {
			return nil, err
		}
		asks = append(asks, ask)
	}
	return asks, rows.Err()
}

func (r *PgAskRepository) Get(ctx context.Context, id string) (domain.AskRecord, error) {
	const query = `
		SELECT id, question, date
		FROM asks
		WHERE id = $1
	`

	var ask domain.AskRecord
	err := r.pool.QueryRow(ctx, query, id).Scan(&ask.ID, &ask.Question, &ask.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AskRecord{}, domain.ErrAskNotFound
		}
		return domain.AskRecord{}, err
	}
	return ask, nil
}

func (r *PgAskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM asks WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAskNotFound
	}
	return nil
}
