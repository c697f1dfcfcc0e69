package api

import (
	"fmt"
	"time"

	chatHandler "recipe-chat/internal/api/handlers/chat"
	"recipe-chat/internal/api/handlers/health"
	"recipe-chat/internal/api/middleware"
	chatService "recipe-chat/internal/core/chat"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, chatSvc *chatService.Service) (*gin.Engine, error) {
	if cfg == nil || chatSvc == nil {
		return nil, fmt.Errorf("router requires config and chat service")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.RequestContext())
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))

	router.Use(middleware.BodySizeLimit(cfg.MaxBodySize))

	handler := chatHandler.NewHandler(chatSvc)

	api := router.Group("/api")
	{
		api.GET("/health", health.HealthCheck(cfg, chatSvc.AIConfigured()))
		api.POST("/chat", handler.HandleChat)
		api.POST("/translate_recipe", handler.HandleTranslateRecipe)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("ai_configured", chatSvc.AIConfigured()),
		zap.Strings("cors_origins", cfg.CORS.AllowOrigins),
		zap.Int64("max_body_size", cfg.MaxBodySize),
	)

	return router, nil
}

// corsConfig 含 "*" 時開放所有來源（不帶 credentials）
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
