package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-qa/internal/repository"
)

// SessionHandler serves the administrative view over conversation history.
type SessionHandler struct {
	logger   *zap.Logger
	sessions repository.SessionRepository
}

func NewSessionHandler(logger *zap.Logger, sessions repository.SessionRepository) *SessionHandler {
	return &SessionHandler{logger: logger, sessions: sessions}
}

// ListSessions handles GET /sessions.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.ReadAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
