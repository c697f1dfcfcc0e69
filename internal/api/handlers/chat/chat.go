package chat

import (
	"net/http"

	chatService "recipe-chat/internal/core/chat"
	"recipe-chat/internal/core/recipe"
	"recipe-chat/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatRequest 聊天請求
type ChatRequest struct {
	Message  string `json:"message"`
	Type     string `json:"type"`     // search, random, area, indian_priority
	Language string `json:"language"` // ISO 639-1
}

// TranslateRecipeRequest 食譜翻譯請求
type TranslateRecipeRequest struct {
	Recipe   recipe.Recipe `json:"recipe"`
	Language string        `json:"language"`
}

// Handler 聊天處理程序
type Handler struct {
	chatService *chatService.Service
}

// NewHandler 創建新的聊天處理程序
func NewHandler(svc *chatService.Service) *Handler {
	return &Handler{chatService: svc}
}

// HandleChat 處理 /api/chat
// 上游失敗一律降級為 200 回應，只有輸入錯誤回傳 400
func (h *Handler) HandleChat(c *gin.Context) {
	requestID := requestid.Get(c)

	var req ChatRequest
	if err := bindJSON(c, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.AbortWithError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}

	common.LogInfo("開始處理聊天請求",
		zap.String("request_id", requestID),
		zap.String("type", req.Type),
		zap.String("language", req.Language),
		zap.Int("message_length", len(req.Message)),
	)

	resp, err := h.chatService.Chat(c.Request.Context(), chatService.Request{
		Message:  req.Message,
		Type:     req.Type,
		Language: req.Language,
	})
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.LogInfo("聊天請求完成",
		zap.String("request_id", requestID),
		zap.Bool("has_recipe", resp.Recipe != nil),
		zap.String("detected_language", resp.DetectedLanguage),
	)

	c.JSON(http.StatusOK, resp)
}

// HandleTranslateRecipe 處理 /api/translate_recipe
func (h *Handler) HandleTranslateRecipe(c *gin.Context) {
	requestID := requestid.Get(c)

	var req TranslateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.AbortWithError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}

	translated, err := h.chatService.TranslateRecipe(c.Request.Context(), req.Recipe, req.Language)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, translated)
}

// bindJSON 以 UseNumber 解析請求體，食譜中的數值原樣回傳
func bindJSON(c *gin.Context, v interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return common.ParseJSONBytes(body, v)
}
