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

// AskRepository is the flat, session-independent log of every substantive
// question asked.
type AskRepository interface {
	Add(ctx context.Context, ask domain.AskRecord) error
	List(ctx context.Context) ([]domain.AskRecord, error)
	Get(ctx context.Context, id string) (domain.AskRecord, error)
	Delete(ctx context.Context, id string) error
}

// FileAskRepository persists ask records as a single JSON array, rewritten
// atomically on every change. Same recovery rule as the session file: missing
// or corrupt storage reads as empty.
type FileAskRepository struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewFileAskRepository(path string, logger *zap.Logger) *FileAskRepository {
	return &FileAskRepository{path: path, logger: logger}
}

func (r *FileAskRepository) Add(_ context.Context, ask domain.AskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asks := r.load()
	asks = append(asks, ask)
	return r.store(asks)
}

func (r *FileAskRepository) List(_ context.Context) ([]domain.AskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileAskRepository) Get(_ context.Context, id string) (domain.AskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ask := range r.load() {
		if ask.ID == id {
			return ask, nil
		}
	}
	return domain.AskRecord{}, domain.ErrAskNotFound
}

func (r *FileAskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asks := r.load()
	for i, ask := range asks {
		if ask.ID == id {
			asks = append(asks[:i], asks[i+1:]...)
			return r.store(asks)
		}
	}
	return domain.ErrAskNotFound
}

func (r *FileAskRepository) load() []domain.AskRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && r.logger != nil {
			r.logger.Warn("read asks file", zap.Error(err))
		}
		return []domain.AskRecord{}
	}

	var asks []domain.AskRecord
	if err := json.Unmarshal(data, &asks); err != nil {
		if r.logger != nil {
			r.logger.Warn("asks file corrupt, starting empty", zap.Error(err))
		}
		return []domain.AskRecord{}
	}
	return asks
}

func (r *FileAskRepository) store(asks []domain.AskRecord) error {
	data, err := json.MarshalIndent(asks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal asks: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write asks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace asks file: %w", err)
	}
	return nil
}
