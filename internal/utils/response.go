// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emulatorgames/rom-catalog/internal/i18n"
)

// APIError is the body of every non-2xx JSON response. "error" is always
// the English text the web client matches on; "message" carries the
// translation for other languages, or the underlying cause on 500s.
type APIError struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func ErrorResponse(c *gin.Context, statusCode int, message, cause string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, APIError{
		Error:   message,
		Message: cause,
		Details: details,
	})
}

// localize returns the English text for key and, when the request asked
// for another language, its translation.
func localize(c *gin.Context, key string, args ...interface{}) (string, string) {
	text := i18n.T(i18n.DefaultLanguage, key, args...)
	lang := GetLangFromContext(c)
	if lang == i18n.DefaultLanguage {
		return text, ""
	}
	if translated := i18n.T(lang, key, args...); translated != text {
		return text, translated
	}
	return text, ""
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	translated := ""
	if message == "" {
		message, translated = localize(c, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, message, translated, details)
}

// NotFoundResponse answers 404 with the message for key, e.g.
// i18n.KeyGameNotFound.
func NotFoundResponse(c *gin.Context, key string) {
	message, translated := localize(c, key)
	ErrorResponse(c, http.StatusNotFound, message, translated, nil)
}

// InternalErrorResponse answers 500 with the message for key and err as
// the cause.
func InternalErrorResponse(c *gin.Context, key string, err error) {
	if key == "" {
		key = i18n.KeyInternalError
	}
	message := i18n.T(i18n.DefaultLanguage, key)

	cause := ""
	if err != nil {
		cause = err.Error()
		_ = c.Error(err)
	}
	ErrorResponse(c, http.StatusInternalServerError, message, cause, nil)
}

func TooManyRequestsResponse(c *gin.Context) {
	message, translated := localize(c, i18n.KeyRateLimitExceeded)
	ErrorResponse(c, http.StatusTooManyRequests, message, translated, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	message, translated := localize(c, i18n.KeyValidationInvalid, "input")
	ErrorResponse(c, http.StatusBadRequest, message, translated, errors)
}

// HTMLResponse serves a pre-rendered page. Pages change on redeploy, so
// clients always revalidate.
func HTMLResponse(c *gin.Context, content []byte) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}

func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	SuccessResponse(c, result.Data)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLanguage
}

func GetRequestIDFromContext(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if idStr, ok := id.(string); ok {
			return idStr
		}
	}
	return ""
}
