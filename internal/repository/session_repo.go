package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"persona-qa/internal/domain"
)

// SessionRepository is the durable mapping from session id to its ordered
// dialogue turns.
type SessionRepository interface {
	ReadAll(ctx context.Context) (domain.SessionCollection, error)
	ListTurns(ctx context.Context, sessionID string) ([]domain.Turn, error)
	AppendTurns(ctx context.Context, sessionID string, turns []domain.Turn) error
}

// FileSessionRepository keeps the whole collection in a single JSON document.
// Every write replaces the document atomically (temp file + rename), so a
// concurrent reader sees either the pre-write or the post-write state. The
// mutex makes the read-modify-write cycle in AppendTurns mutually exclusive;
// without it two concurrent appends to the same session could silently drop a
// turn pair.
//
// Cost is O(total turns across all sessions) per write. Acceptable for low
// write concurrency and modest history; use the Postgres repository beyond
// that.
type FileSessionRepository struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewFileSessionRepository(path string, logger *zap.Logger) *FileSessionRepository {
	return &FileSessionRepository{path: path, logger: logger}
}

func (r *FileSessionRepository) ReadAll(_ context.Context) (domain.SessionCollection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileSessionRepository) ListTurns(_ context.Context, sessionID string) ([]domain.Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()[sessionID], nil
}

func (r *FileSessionRepository) AppendTurns(_ context.Context, sessionID string, turns []domain.Turn) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	if len(turns) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.load()
	sessions[sessionID] = append(sessions[sessionID], turns...)
	return r.store(sessions)
}

// load reads the persisted collection. Missing or malformed storage means
// "no history yet", never an error: the store heals itself on the next write.
func (r *FileSessionRepository) load() domain.SessionCollection {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && r.logger != nil {
			r.logger.Warn("read sessions file", zap.Error(err))
		}
		return domain.SessionCollection{}
	}

	var sessions domain.SessionCollection
	if err := json.Unmarshal(data, &sessions); err != nil {
		if r.logger != nil {
			r.logger.Warn("sessions file corrupt, starting empty", zap.Error(err))
		}
		return domain.SessionCollection{}
	}
	if sessions == nil {
		sessions = domain.SessionCollection{}
	}
	return sessions
}

// store replaces the whole document in one atomic unit.
func (r *FileSessionRepository) store(sessions domain.SessionCollection) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write sessions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace sessions file: %w", err)
	}
	return nil
}
