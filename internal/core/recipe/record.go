package recipe

import (
	"fmt"
	"strings"
)

// 上游食譜 API 使用的欄位名稱
const (
	KeyID           = "idMeal"
	KeyTitle        = "strMeal"
	KeyInstructions = "strInstructions"
	KeyCategory     = "strCategory"
	KeyArea         = "strArea"
	KeyThumbnail    = "strMealThumb"
)

// TranslatableKeys 可被翻譯的文字欄位
var TranslatableKeys = []string{KeyTitle, KeyInstructions, KeyCategory, KeyArea}

// Recipe 食譜紀錄
// 結構由上游 API 或本地目錄決定，只讀取已知欄位
type Recipe map[string]any

// Title 食譜名稱
func (r Recipe) Title() string {
	return r.String(KeyTitle)
}

// ID 食譜 ID
func (r Recipe) ID() string {
	return r.String(KeyID)
}

// String 以字串形式讀取欄位，不存在或為 null 時回傳空字串
func (r Recipe) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone 淺拷貝
func (r Recipe) Clone() Recipe {
	if r == nil {
		return nil
	}
	out := make(Recipe, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge 回傳副本，只以非空字串覆寫指定的欄位
func (r Recipe) Merge(fields map[string]any, allowed []string) Recipe {
	out := r.Clone()
	if out == nil {
		out = Recipe{}
	}
	for _, key := range allowed {
		s, ok := fields[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out[key] = s
	}
	return out
}
