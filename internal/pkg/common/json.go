package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseJSON 解析 JSON 字符串到結構體
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

// ParseJSONBytes 解析 JSON 位元組切片到結構體
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

var (
	unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	codeFencePattern   = regexp.MustCompile("(?s)```(?:json|JSON)?(.*?)```")
)

// QuoteJSONKeys 將未加雙引號的鍵補上雙引號
func QuoteJSONKeys(raw string) string {
	return unquotedKeyPattern.ReplaceAllString(raw, `$1"$2":`)
}

// ExtractJSONObject 從模型輸出中取出 JSON 物件
// 移除 markdown code fence，並截取第一個 { 到最後一個 } 之間的內容
func ExtractJSONObject(raw string) string {
	content := strings.TrimSpace(raw)
	if m := codeFencePattern.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	content = strings.TrimSpace(strings.ReplaceAll(content, "```", ""))

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		content = content[start : end+1]
	}
	return content
}

// ParseModelJSON 解析模型回傳的 JSON 物件，必要時補上鍵的雙引號
func ParseModelJSON(raw string, v interface{}) error {
	content := ExtractJSONObject(raw)
	err := ParseJSON(content, v)
	if err == nil {
		return nil
	}
	if retryErr := ParseJSON(QuoteJSONKeys(content), v); retryErr == nil {
		return nil
	}
	return fmt.Errorf("failed to parse model JSON: %w", err)
}

// Truncate 截斷過長字串（用於日誌）
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
