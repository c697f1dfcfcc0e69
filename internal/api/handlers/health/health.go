package health

import (
	"net/http"

	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status       string `json:"status"`
	AIConfigured bool   `json:"ai_configured"`
	Version      string `json:"version,omitempty"`
}

// HealthCheck 健康檢查處理器
// aiConfigured 在啟動時決定，之後不再變動
func HealthCheck(cfg *config.Config, aiConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		common.LogDebug("Health check request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.JSON(http.StatusOK, HealthResponse{
			Status:       "healthy",
			AIConfigured: aiConfigured,
			Version:      cfg.App.Version,
		})
	}
}
