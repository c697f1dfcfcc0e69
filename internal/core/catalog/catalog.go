package catalog

import (
	"errors"
	"strings"

	"recipe-chat/internal/core/recipe"
)

// Dish 本地精選菜色
type Dish struct {
	ID           string
	Name         string
	Keywords     []string
	Category     string
	Area         string
	Instructions string
	Thumbnail    string
}

// Recipe 將菜色轉為與上游 API 相同欄位的食譜紀錄
func (d Dish) Recipe() recipe.Recipe {
	return recipe.Recipe{
		recipe.KeyID:           d.ID,
		recipe.KeyTitle:        d.Name,
		recipe.KeyCategory:     d.Category,
		recipe.KeyArea:         d.Area,
		recipe.KeyInstructions: d.Instructions,
		recipe.KeyThumbnail:    d.Thumbnail,
		"keywords":             append([]string(nil), d.Keywords...),
	}
}

// matches 雙向、不分大小寫的子字串比對
func (d Dish) matches(lowerQuery string) bool {
	name := strings.ToLower(d.Name)
	if strings.Contains(name, lowerQuery) || strings.Contains(lowerQuery, name) {
		return true
	}
	for _, k := range d.Keywords {
		k = strings.ToLower(k)
		if strings.Contains(k, lowerQuery) || strings.Contains(lowerQuery, k) {
			return true
		}
	}
	return false
}

// Intn 隨機來源
type Intn interface {
	Intn(n int) int
}

// Catalog 不可變的菜色目錄
type Catalog struct {
	dishes []Dish
}

// ErrEmptyCatalog 目錄至少需要一道菜，隨機挑選才有結果
var ErrEmptyCatalog = errors.New("catalog requires at least one dish")

// New 以給定順序建立目錄
func New(dishes []Dish) (*Catalog, error) {
	if len(dishes) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{dishes: append([]Dish(nil), dishes...)}, nil
}

// Default 內建的印度菜目錄
func Default() *Catalog {
	return &Catalog{dishes: append([]Dish(nil), popularIndianDishes...)}
}

// FindMatch 依宣告順序回傳第一個符合的菜色
func (c *Catalog) FindMatch(query string) (Dish, bool) {
	lowerQuery := strings.ToLower(query)
	for _, d := range c.dishes {
		if d.matches(lowerQuery) {
			return d, true
		}
	}
	return Dish{}, false
}

// RandomPick 均勻隨機挑選一道菜
func (c *Catalog) RandomPick(rng Intn) Dish {
	return c.dishes[rng.Intn(len(c.dishes))]
}

// Names 依宣告順序的菜名
func (c *Catalog) Names() []string {
	names := make([]string, len(c.dishes))
	for i, d := range c.dishes {
		names[i] = d.Name
	}
	return names
}

// Len 菜色數量
func (c *Catalog) Len() int {
	return len(c.dishes)
}
