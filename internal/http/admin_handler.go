package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groupme-bot/internal/service"
)

// AdminHandler expone el log de conversaciones en solo lectura.
type AdminHandler struct {
	logger *zap.Logger
	logs   *service.ConversationLog
}

func NewAdminHandler(logger *zap.Logger, logs *service.ConversationLog) *AdminHandler {
	return &AdminHandler{logger: logger, logs: logs}
}

// ListLogs maneja GET /admin/logs?limit=N.
func (h *AdminHandler) ListLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.logs.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list logs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": entries})
}
