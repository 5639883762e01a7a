package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-qa/internal/domain"
	"persona-qa/internal/repository"
)

// AskLogHandler serves the administrative ask-log endpoints.
type AskLogHandler struct {
	logger *zap.Logger
	asks   repository.AskRepository
}

func NewAskLogHandler(logger *zap.Logger, asks repository.AskRepository) *AskLogHandler {
	return &AskLogHandler{logger: logger, asks: asks}
}

// ListAsks handles GET /asks.
func (h *AskLogHandler) ListAsks(c *gin.Context) {
	asks, err := h.asks.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list asks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list asks"})
		return
	}
	c.JSON(http.StatusOK, asks)
}

// GetAsk handles GET /asks/:id.
func (h *AskLogHandler) GetAsk(c *gin.Context) {
	ask, err := h.asks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ask not found"})
			return
		}
		h.logger.Error("get ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get ask"})
		return
	}
	c.JSON(http.StatusOK, ask)
}

// DeleteAsk handles DELETE /asks/:id.
func (h *AskLogHandler) DeleteAsk(c *gin.Context) {
	if err := h.asks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ask not found"})
			return
		}
		h.logger.Error("delete ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete ask"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ask deleted successfully"})
}
