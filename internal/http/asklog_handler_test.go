package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"persona-qa/internal/domain"
)

func adminHeaders(t *testing.T, env *testEnv) map[string]string {
	t.Helper()
	token, err := env.jwt.GenerateAccessToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token.Token}
}

func TestAskLogRequiresAuth(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, c := range []struct{ method, path string }{
		{http.MethodGet, "/asks"},
		{http.MethodGet, "/asks/a1"},
		{http.MethodDelete, "/asks/a1"},
	} {
		w := doJSON(t, env.router, c.method, c.path, nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", c.method, c.path, w.Code)
		}
	}

	w := doJSON(t, env.router, http.MethodGet, "/asks", nil, map[string]string{
		"Authorization": "Bearer garbage",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestAskLogListAndGet(t *testing.T) {
	env := newTestEnv(t, nil)
	headers := adminHeaders(t, env)

	env.asks.records = []domain.AskRecord{
		{ID: "a1", Question: "q1", Date: time.Now().UTC()},
		{ID: "a2", Question: "q2", Date: time.Now().UTC()},
	}

	w := doJSON(t, env.router, http.MethodGet, "/asks", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var asks []domain.AskRecord
	if err := json.Unmarshal(w.Body.Bytes(), &asks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(asks) != 2 {
		t.Fatalf("expected 2 records, got %d", len(asks))
	}

	w = doJSON(t, env.router, http.MethodGet, "/asks/a2", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var ask domain.AskRecord
	if err := json.Unmarshal(w.Body.Bytes(), &ask); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ask.Question != "q2" {
		t.Fatalf("expected q2, got %q", ask.Question)
	}
}

func TestAskLogNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	headers := adminHeaders(t, env)

	w := doJSON(t, env.router, http.MethodGet, "/asks/missing", nil, headers)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", w.Code)
	}
	w = doJSON(t, env.router, http.MethodDelete, "/asks/missing", nil, headers)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", w.Code)
	}
}

func TestAskLogDeleteTwice(t *testing.T) {
	env := newTestEnv(t, nil)
	headers := adminHeaders(t, env)

	env.asks.records = []domain.AskRecord{
		{ID: "a1", Question: "q1", Date: time.Now().UTC()},
	}

	w := doJSON(t, env.router, http.MethodDelete, "/asks/a1", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}
	w = doJSON(t, env.router, http.MethodDelete, "/asks/a1", nil, headers)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("valid password", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/admin/login", map[string]string{
			"password": "admin-pass",
		}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Token string `json:"access_token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Token == "" {
			t.Fatalf("expected access token")
		}
		// The issued token must open the ask-log endpoints.
		w = doJSON(t, env.router, http.MethodGet, "/asks", nil, map[string]string{
			"Authorization": "Bearer " + resp.Token,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected token to grant access, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/admin/login", map[string]string{
			"password": "nope",
		}, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
