package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-qa/internal/domain"
)

// PgSessionRepository stores turns row-per-turn in Postgres. Appending a turn
// pair is one transaction, so the pair is atomic and concurrent appends to the
// same session cannot lose each other.
//
// Schema:
//
//	CREATE TABLE session_turns (
//	    seq        BIGSERIAL PRIMARY KEY,
//	    session_id TEXT NOT NULL,
//	    role       TEXT NOT NULL,
//	    content    TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE INDEX session_turns_session_idx ON session_turns (session_id, seq);
type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) ReadAll(ctx context.Context) (domain.SessionCollection, error) {
	const query = `
		SELECT session_id, role, content
		FROM session_turns
		ORDER BY session_id, seq ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := domain.SessionCollection{}
	for rows.Next() {
		var sessionID, role, content string
		if err := rows.Scan(&sessionID, &role, &content); err != nil {
			return nil, err
		}
		sessions[sessionID] = append(sessions[sessionID], domain.Turn{
			Role:    domain.Role(role),
			Content: content,
		})
	}
	return sessions, rows.Err()
}

func (r *PgSessionRepository) ListTurns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	const query = `
		SELECT role, content
		FROM session_turns
		WHERE session_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, err
		}
		turns = append(turns, domain.Turn{Role: domain.Role(role), Content: content})
	}
	return turns, rows.Err()
}

func (r *PgSessionRepository) AppendTurns(ctx context.Context, sessionID string, turns []domain.Turn) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	if len(turns) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO session_turns (session_id, role, content)
		VALUES ($1, $2, $3)
	`
	for _, turn := range turns {
		if _, err := tx.Exec(ctx, query, sessionID, string(turn.Role), turn.Content); err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}
	}

	return tx.Commit(ctx)
}
