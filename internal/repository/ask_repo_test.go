package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"persona-qa/internal/domain"
)

func newTestAskRepo(t *testing.T) *FileAskRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asks.json")
	return NewFileAskRepository(path, zap.NewNop())
}

func TestFileAskRepositoryAddListGet(t *testing.T) {
	repo := newTestAskRepo(t)
	ctx := context.Background()

	ask := domain.AskRecord{ID: "a1", Question: "who are you?", Date: time.Now().UTC()}
	if err := repo.Add(ctx, ask); err != nil {
		t.Fatalf("add: %v", err)
	}

	asks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asks) != 1 || asks[0].ID != "a1" {
		t.Fatalf("expected one record a1, got %+v", asks)
	}

	got, err := repo.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Question != "who are you?" {
		t.Fatalf("expected stored question, got %q", got.Question)
	}
}

func TestFileAskRepositoryNotFoundIsConsistent(t *testing.T) {
	repo := newTestAskRepo(t)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrAskNotFound) {
		t.Fatalf("get: expected ErrAskNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domain.ErrAskNotFound) {
		t.Fatalf("delete: expected ErrAskNotFound, got %v", err)
	}
}

func TestFileAskRepositoryDeleteTwice(t *testing.T) {
	repo := newTestAskRepo(t)
	ctx := context.Background()

	ask := domain.AskRecord{ID: "a1", Question: "q", Date: time.Now().UTC()}
	if err := repo.Add(ctx, ask); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, "a1"); !errors.Is(err, domain.ErrAskNotFound) {
		t.Fatalf("second delete: expected ErrAskNotFound, got %v", err)
	}

	asks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asks) != 0 {
		t.Fatalf("expected empty log, got %d records", len(asks))
	}
}

func TestFileAskRepositoryPreservesOthersOnDelete(t *testing.T) {
	repo := newTestAskRepo(t)
	ctx := context.Background()

	for _, id := range []string{"a1", "a2", "a3"} {
		if err := repo.Add(ctx, domain.AskRecord{ID: id, Question: id, Date: time.Now().UTC()}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := repo.Delete(ctx, "a2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	asks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asks) != 2 || asks[0].ID != "a1" || asks[1].ID != "a3" {
		t.Fatalf("expected a1 and a3 in order, got %+v", asks)
	}
}
