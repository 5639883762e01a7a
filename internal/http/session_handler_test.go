package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"persona-qa/internal/domain"
)

func TestSessionsRequireAuth(t *testing.T) {
	env := newTestEnv(t, nil)

	w := doJSON(t, env.router, http.MethodGet, "/sessions", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionsList(t *testing.T) {
	env := newTestEnv(t, nil)
	headers := adminHeaders(t, env)

	env.sessions.sessions["s1"] = []domain.Turn{
		{Role: domain.RoleUser, Content: "q1"},
		{Role: domain.RoleAssistant, Content: "a1"},
	}

	w := doJSON(t, env.router, http.MethodGet, "/sessions", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sessions domain.SessionCollection
	if err := json.Unmarshal(w.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(sessions["s1"]) != 2 {
		t.Fatalf("expected 2 turns for s1, got %d", len(sessions["s1"]))
	}
}
