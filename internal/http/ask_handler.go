package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-qa/internal/domain"
	"persona-qa/internal/service"
)

// AskHandler holds dependencies for the question-answer endpoint.
type AskHandler struct {
	logger  *zap.Logger
	chat    *service.ChatService
	limiter service.AskRateLimiter
}

func NewAskHandler(logger *zap.Logger, chat *service.ChatService, limiter service.AskRateLimiter) *AskHandler {
	return &AskHandler{logger: logger, chat: chat, limiter: limiter}
}

// Ask handles POST /ask.
func (h *AskHandler) Ask(c *gin.Context) {
	var req struct {
		Question  string `json:"question" binding:"required"`
		Language  string `json:"language"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid ask request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	result, err := h.chat.Ask(c.Request.Context(), req.Question, req.Language, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		case errors.Is(err, domain.ErrUnsupportedLanguage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
		case errors.Is(err, domain.ErrBackendUnavailable):
			h.logger.Error("backend unavailable", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "answer backend unavailable"})
		default:
			h.logger.Error("ask failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not answer question"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
