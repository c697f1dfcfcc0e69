package assistant

import (
	"context"
	"fmt"
	"strings"

	"recipe-chat/internal/core/ai/provider"
	"recipe-chat/internal/core/recipe"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultLanguage 預設語言
const DefaultLanguage = "en"

// QueryAnalysis 查詢分析結果
type QueryAnalysis struct {
	Language        string `json:"language"`
	TranslatedQuery string `json:"translatedQuery"`
	IsGreeting      bool   `json:"isGreeting"`
}

// Assistant 語言助理：語言偵測、翻譯與查詢擷取
// configured 在建立時決定，之後不再變動
type Assistant struct {
	provider    provider.Provider
	configured  bool
	knownDishes []string
}

// Option 助理選項
type Option func(*Assistant)

// WithKnownDishes 翻譯時保留不譯的菜名
func WithKnownDishes(names []string) Option {
	return func(a *Assistant) {
		a.knownDishes = append([]string(nil), names...)
	}
}

// New 創建語言助理
// 未提供 API 金鑰或 provider 時，所有操作皆為原樣回傳
func New(cfg *config.Config, p provider.Provider, opts ...Option) *Assistant {
	a := &Assistant{
		provider:   p,
		configured: cfg != nil && cfg.LLM.Configured() && p != nil,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configured 是否已設定語言模型
func (a *Assistant) Configured() bool {
	return a.configured
}

// AnalyzeQuery 偵測語言、翻譯成英文並擷取食物關鍵字
// 任何失敗都回傳 {en, 原文}
func (a *Assistant) AnalyzeQuery(ctx context.Context, text string) QueryAnalysis {
	fallback := QueryAnalysis{Language: DefaultLanguage, TranslatedQuery: text}
	if !a.configured {
		return fallback
	}

	content, err := a.generate(ctx, analyzePrompt(text))
	if err != nil {
		common.LogWarn("AI analysis failed", zap.Error(err))
		return fallback
	}

	var analysis QueryAnalysis
	if err := common.ParseModelJSON(content, &analysis); err != nil {
		common.LogWarn("Failed to parse AI analysis",
			zap.Error(err),
			zap.String("response_preview", common.Truncate(content, 200)),
		)
		return fallback
	}

	analysis.Language = NormalizeLanguage(analysis.Language)
	if strings.TrimSpace(analysis.TranslatedQuery) == "" {
		analysis.TranslatedQuery = text
	}
	return analysis
}

// TranslateText 將回覆翻譯為目標語言，失敗時回傳原文
func (a *Assistant) TranslateText(ctx context.Context, text, targetLang string) string {
	if !a.configured || isDefaultLanguage(targetLang) || text == "" {
		return text
	}

	content, err := a.generate(ctx, translateTextPrompt(text, targetLang, a.knownDishes))
	if err != nil {
		common.LogWarn("AI translation failed",
			zap.Error(err),
			zap.String("target_lang", targetLang),
		)
		return text
	}
	return unquote(content)
}

// TranslateRecipe 翻譯食譜的名稱、做法、分類與地區
// 只覆寫這四個欄位，其餘欄位原樣保留；失敗時回傳原食譜
func (a *Assistant) TranslateRecipe(ctx context.Context, r recipe.Recipe, targetLang string) recipe.Recipe {
	if !a.configured || isDefaultLanguage(targetLang) || len(r) == 0 {
		return r
	}

	content, err := a.generate(ctx, translateRecipePrompt(r, targetLang))
	if err != nil {
		common.LogWarn("AI recipe translation failed",
			zap.Error(err),
			zap.String("target_lang", targetLang),
		)
		return r
	}

	var translated map[string]any
	if err := common.ParseModelJSON(content, &translated); err != nil {
		common.LogWarn("Failed to parse AI recipe translation",
			zap.Error(err),
			zap.String("response_preview", common.Truncate(content, 200)),
		)
		return r
	}

	return r.Merge(translated, recipe.TranslatableKeys)
}

func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.provider.Generate(ctx, provider.UserPrompt(prompt))
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("empty AI response")
	}
	return resp.Content, nil
}

// NormalizeLanguage 轉為小寫的 ISO 639-1 基本代碼
// 例如 "ES" -> "es"，"pt-BR" -> "pt"
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	return lang
}

func isDefaultLanguage(lang string) bool {
	return NormalizeLanguage(lang) == DefaultLanguage
}

// unquote 去除模型常見的前後引號
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
