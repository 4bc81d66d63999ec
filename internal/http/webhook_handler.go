package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/service"
)

const healthMessage = "🤖 GroupMe Bot is alive!"

// WebhookHandler atiende el callback de GroupMe.
type WebhookHandler struct {
	logger  *zap.Logger
	webhook *service.WebhookService
}

// NewWebhookHandler crea una instancia de WebhookHandler con dependencias necesarias.
func NewWebhookHandler(logger *zap.Logger, webhook *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		logger:  logger,
		webhook: webhook,
	}
}

// Health maneja GET /.
func (h *WebhookHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}

// Receive maneja POST /.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req struct {
		ID         string  `json:"id"`
		GroupID    string  `json:"group_id"`
		SenderType string  `json:"sender_type"`
		Name       string  `json:"name"`
		Text       *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid webhook request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg := domain.InboundMessage{
		ID:          req.ID,
		GroupID:     req.GroupID,
		SenderKind:  domain.ParseSenderKind(req.SenderType),
		DisplayName: req.Name,
	}
	// Los posts del propio bot se ignoran aunque no traigan text.
	if req.Text == nil && !msg.FromBot() {
		h.logger.Warn("invalid webhook request", zap.String("error", "text is required"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Text != nil {
		msg.Text = *req.Text
	}

	out, err := h.webhook.Handle(c.Request.Context(), msg)
	if err != nil {
		h.logger.Error("conversation log write failed", zap.Error(err), zap.String("user", req.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record message"})
		return
	}

	if out.Ignored {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": out.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "replied", "rule": out.Rule})
}
