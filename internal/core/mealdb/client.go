package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-chat/internal/core/recipe"
	"recipe-chat/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// BaseURL TheMealDB 公開 API，不需驗證
const BaseURL = "https://www.themealdb.com/api/json/v1/1"

// mealsResponse TheMealDB 回應，查無資料時 meals 為 null
type mealsResponse struct {
	Meals []recipe.Recipe `json:"meals"`
}

// Client TheMealDB 客戶端
// 每個方法回傳 (結果, error)，錯誤由呼叫端決定如何降級
type Client struct {
	client *resty.Client
}

// NewClient 創建 TheMealDB 客戶端
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// SearchByName 依名稱搜尋
func (c *Client) SearchByName(ctx context.Context, query string) ([]recipe.Recipe, error) {
	return c.list(ctx, "search", "/search.php", "s", query)
}

// FilterByArea 依地區篩選，結果只含摘要欄位（名稱、圖片、ID）
func (c *Client) FilterByArea(ctx context.Context, area string) ([]recipe.Recipe, error) {
	return c.list(ctx, "filter_by_area", "/filter.php", "a", area)
}

// Random 隨機取得一道食譜，查無資料時回傳 nil
func (c *Client) Random(ctx context.Context) (recipe.Recipe, error) {
	return c.first(ctx, "random", "/random.php", "", "")
}

// LookupByID 依 ID 取得完整食譜，查無資料時回傳 nil
func (c *Client) LookupByID(ctx context.Context, id string) (recipe.Recipe, error) {
	return c.first(ctx, "lookup", "/lookup.php", "i", id)
}

func (c *Client) first(ctx context.Context, op, path, param, value string) (recipe.Recipe, error) {
	meals, err := c.list(ctx, op, path, param, value)
	if err != nil || len(meals) == 0 {
		return nil, err
	}
	return meals[0], nil
}

func (c *Client) list(ctx context.Context, op, path, param, value string) ([]recipe.Recipe, error) {
	start := time.Now()
	meals, err := c.get(ctx, path, param, value)
	common.LogUpstreamCall("themealdb", op, time.Since(start), err, common.RequestIDFromContext(ctx))
	return meals, err
}

func (c *Client) get(ctx context.Context, path, param, value string) ([]recipe.Recipe, error) {
	req := c.client.R().SetContext(ctx)
	if param != "" {
		req.SetQueryParam(param, value)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to TheMealDB: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("TheMealDB returned status %d: %s", resp.StatusCode(), common.Truncate(resp.String(), 200))
	}

	var result mealsResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse TheMealDB response: %w", err)
	}
	return result.Meals, nil
}
