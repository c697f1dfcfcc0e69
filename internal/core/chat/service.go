package chat

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"

	"recipe-chat/internal/core/ai/assistant"
	"recipe-chat/internal/core/catalog"
	"recipe-chat/internal/core/recipe"
	"recipe-chat/internal/pkg/common"

	"go.uber.org/zap"
)

// 查詢類型
const (
	TypeSearch         = "search"
	TypeRandom         = "random"
	TypeArea           = "area"
	TypeIndianPriority = "indian_priority"
)

const (
	// random 類型：抽到的值大於此門檻時改用上游隨機食譜（機率 0.6）
	upstreamRandomThreshold = 0.4
	// area 類型只在前幾筆結果中挑選
	areaPickWindow = 5
)

// 客戶端輸入錯誤
var (
	ErrNoMessage = common.NewError(common.ErrCodeNoMessage, "No message provided", http.StatusBadRequest, nil)
	ErrNoRecipe  = common.NewError(common.ErrCodeNoRecipe, "No recipe provided", http.StatusBadRequest, nil)
)

// Request 聊天請求
type Request struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

// Response 聊天回應，recipe 為 null 表示沒有結果
type Response struct {
	Reply            string        `json:"reply"`
	Recipe           recipe.Recipe `json:"recipe"`
	DetectedLanguage string        `json:"detectedLanguage"`
}

// RecipeSource 上游食譜來源，錯誤由 Service 轉為預設值
type RecipeSource interface {
	SearchByName(ctx context.Context, query string) ([]recipe.Recipe, error)
	Random(ctx context.Context) (recipe.Recipe, error)
	LookupByID(ctx context.Context, id string) (recipe.Recipe, error)
	FilterByArea(ctx context.Context, area string) ([]recipe.Recipe, error)
}

// LanguageAssistant 語言助理
type LanguageAssistant interface {
	Configured() bool
	AnalyzeQuery(ctx context.Context, text string) assistant.QueryAnalysis
	TranslateText(ctx context.Context, text, targetLang string) string
	TranslateRecipe(ctx context.Context, r recipe.Recipe, targetLang string) recipe.Recipe
}

// Rand 隨機來源
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// globalRand 使用 math/rand 的全域來源（可並行使用）
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// Service 聊天協調服務
type Service struct {
	catalog   *catalog.Catalog
	recipes   RecipeSource
	assistant LanguageAssistant
	rng       Rand
}

// NewService 創建聊天服務，rng 為 nil 時使用全域隨機來源
func NewService(c *catalog.Catalog, recipes RecipeSource, a LanguageAssistant, rng Rand) *Service {
	if rng == nil {
		rng = globalRand{}
	}
	return &Service{
		catalog:   c,
		recipes:   recipes,
		assistant: a,
		rng:       rng,
	}
}

// AIConfigured 語言助理是否可用
func (s *Service) AIConfigured() bool {
	return s.assistant.Configured()
}

// Chat 處理一則聊天訊息
func (s *Service) Chat(ctx context.Context, req Request) (*Response, error) {
	if req.Type == "" {
		req.Type = TypeSearch
	}
	if req.Language == "" {
		req.Language = assistant.DefaultLanguage
	}
	if req.Message == "" && req.Type != TypeRandom {
		return nil, ErrNoMessage
	}

	analysis := assistant.QueryAnalysis{Language: req.Language, TranslatedQuery: req.Message}
	if s.assistant.Configured() && req.Message != "" {
		analysis = s.assistant.AnalyzeQuery(ctx, req.Message)
	}

	// 偵測到非英文時優先使用偵測結果，否則使用請求宣告的語言
	targetLang := req.Language
	if analysis.Language != "" && analysis.Language != assistant.DefaultLanguage {
		targetLang = analysis.Language
	}

	searchQuery := analysis.TranslatedQuery
	if searchQuery == "" {
		searchQuery = req.Message
	}

	common.LogDebug("聊天查詢分析",
		zap.String("request_id", common.RequestIDFromContext(ctx)),
		zap.String("type", req.Type),
		zap.String("search_query", searchQuery),
		zap.String("target_lang", targetLang),
	)

	reply, found := s.resolve(ctx, req.Type, searchQuery)

	if targetLang != assistant.DefaultLanguage {
		reply = s.assistant.TranslateText(ctx, reply, targetLang)
	}

	return &Response{
		Reply:            reply,
		Recipe:           found,
		DetectedLanguage: targetLang,
	}, nil
}

// resolve 依查詢類型決定回覆與食譜
func (s *Service) resolve(ctx context.Context, queryType, query string) (string, recipe.Recipe) {
	switch queryType {
	case TypeSearch, TypeIndianPriority, TypeArea:
		if dish, ok := s.catalog.FindMatch(query); ok {
			return fmt.Sprintf("I found a delicious recipe for %s!", dish.Name), dish.Recipe()
		}
	}

	switch queryType {
	case TypeRandom:
		return s.randomRecipe(ctx)
	case TypeArea:
		return s.areaRecipe(ctx, query)
	default:
		return s.searchRecipe(ctx, query)
	}
}

func (s *Service) randomRecipe(ctx context.Context) (string, recipe.Recipe) {
	if s.rng.Float64() > upstreamRandomThreshold {
		r := s.random(ctx)
		if r == nil {
			return "I couldn't find a random recipe at the moment.", nil
		}
		return fmt.Sprintf("Here is a random discovery: %s", r.Title()), r
	}

	dish := s.catalog.RandomPick(s.rng)
	return fmt.Sprintf("Here is a random pick for you: %s 🇮🇳", dish.Name), dish.Recipe()
}

func (s *Service) areaRecipe(ctx context.Context, area string) (string, recipe.Recipe) {
	summaries := s.filterByArea(ctx, area)
	if len(summaries) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any recipes for %s.", area), nil
	}

	window := summaries[:min(areaPickWindow, len(summaries))]
	summary := window[s.rng.Intn(len(window))]

	r := s.lookupByID(ctx, summary.ID())
	if r == nil {
		return fmt.Sprintf("Found %s dishes.", area), nil
	}
	return fmt.Sprintf("Here is a %s dish: %s", area, r.Title()), r
}

func (s *Service) searchRecipe(ctx context.Context, query string) (string, recipe.Recipe) {
	if results := s.searchByName(ctx, query); len(results) > 0 {
		r := results[0]
		return fmt.Sprintf("I found this recipe for you: %s", r.Title()), r
	}

	fallback := s.catalog.RandomPick(s.rng)
	return fmt.Sprintf("I couldn't find '%s'. How about trying %s instead?", query, fallback.Name), fallback.Recipe()
}

// TranslateRecipe 翻譯客戶端提供的食譜
func (s *Service) TranslateRecipe(ctx context.Context, r recipe.Recipe, language string) (recipe.Recipe, error) {
	if len(r) == 0 {
		return nil, ErrNoRecipe
	}
	if language == "" {
		language = assistant.DefaultLanguage
	}
	return s.assistant.TranslateRecipe(ctx, r, language), nil
}
