package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-chat/internal/api"
	"recipe-chat/internal/core/ai/assistant"
	"recipe-chat/internal/core/ai/llm"
	"recipe-chat/internal/core/ai/provider"
	"recipe-chat/internal/core/catalog"
	"recipe-chat/internal/core/chat"
	"recipe-chat/internal/core/mealdb"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.Log.Level, cfg.Log.Mode, cfg.Log.File, cfg.App.Name); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("llm_key", config.MaskAPIKey(cfg.LLM.APIKey)),
		zap.String("llm_model", cfg.LLM.Model),
		zap.Bool("ai_configured", cfg.LLM.Configured()),
	)

	// 語言模型只在提供金鑰時建立
	var llmProvider provider.Provider
	if cfg.LLM.Configured() {
		client := llm.NewClient(cfg.LLM)
		defer client.Close()
		llmProvider = client
	} else {
		common.LogWarn("No LLM API key provided, language features disabled")
	}

	dishes := catalog.Default()
	chatSvc := chat.NewService(
		dishes,
		mealdb.NewClient(mealdb.BaseURL),
		assistant.New(cfg, llmProvider, assistant.WithKnownDishes(dishes.Names())),
		nil,
	)

	// 設置路由
	router, err := api.SetupRouter(cfg, chatSvc)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo(common.MsgServerStarting,
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogFatal("Failed to start server",
				zap.Error(err),
			)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo(common.MsgServerStopping)

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		return
	}

	common.LogInfo(common.MsgServerExited)
}
