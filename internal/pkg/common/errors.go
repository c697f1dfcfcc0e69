package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Error string `json:"error"`          // 錯誤信息
	Code  string `json:"code,omitempty"` // 錯誤代碼
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Wrap 以相同代碼與狀態包裝底層錯誤
func (e *CustomError) Wrap(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"  // 400
	ErrCodeNoMessage      = "NO_MESSAGE"       // 400
	ErrCodeNoRecipe       = "NO_RECIPE"        // 400
	ErrCodeBodyTooLarge   = "BODY_TOO_LARGE"   // 413
	ErrCodeInternalError  = "INTERNAL_ERROR"   // 500
	ErrCodeUpstreamFailed = "UPSTREAM_FAILURE" // 僅用於日誌，永不回傳給客戶端
)

// 預定義錯誤
var (
	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "Invalid request format", http.StatusBadRequest, nil)
	ErrInternalError  = NewError(ErrCodeInternalError, "Internal server error", http.StatusInternalServerError, nil)
	ErrUpstream       = NewError(ErrCodeUpstreamFailed, "Upstream request failed", http.StatusBadGateway, nil)
)

// AsCustomError 取出錯誤鏈中的 CustomError，找不到時視為內部錯誤
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return ErrInternalError.Wrap(err)
}

// AbortWithError 以 JSON 回應錯誤並中止請求
func AbortWithError(c *gin.Context, err error) {
	ce := AsCustomError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(ce.Status, ErrorResponse{
		Error: ce.Message,
		Code:  ce.Code,
	})
}
