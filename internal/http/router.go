package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAccounts son las credenciales de basic auth para /admin. Vacío no monta las rutas.
type AdminAccounts gin.Accounts

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	webhookH *WebhookHandler,
	adminH *AdminHandler,
	admins AdminAccounts,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	// GroupMe llama siempre a la raíz configurada como callback URL.
	r.GET("/", webhookH.Health)
	r.POST("/", webhookH.Receive)

	if len(admins) > 0 && adminH != nil {
		admin := r.Group("/admin", gin.BasicAuth(gin.Accounts(admins)), jsonContentTypeMiddleware())
		admin.GET("/logs", adminH.ListLogs)
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
