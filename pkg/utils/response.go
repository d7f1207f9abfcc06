package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

// ErrorResponse is the only error shape the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorJSON aborts the request with the given status and message.
func ErrorJSON(ctx *gin.Context, statusCode int, message string) {
	ctx.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

// UnauthorizedJSON sends an unauthorized error response
func UnauthorizedJSON(ctx *gin.Context) {
	ErrorJSON(ctx, http.StatusUnauthorized, "Unauthorized")
}

// NotFoundJSON sends a not found error response
func NotFoundJSON(ctx *gin.Context, resource string) {
	ErrorJSON(ctx, http.StatusNotFound, resource+" not found")
}

// BadRequestJSON sends a bad request error response
func BadRequestJSON(ctx *gin.Context, message string) {
	ErrorJSON(ctx, http.StatusBadRequest, message)
}

// InternalErrorJSON logs err and sends a generic 500; store errors are never echoed to clients.
func InternalErrorJSON(ctx *gin.Context, err error) {
	zap.L().Error("request failed",
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err),
	)
	ErrorJSON(ctx, http.StatusInternalServerError, "Internal server error")
}

// StatusFor maps an error kind to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes err as {"error": message} with the status of its kind.
func AbortWithError(ctx *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		InternalErrorJSON(ctx, err)
		return
	}
	ErrorJSON(ctx, status, common.Message(err, http.StatusText(status)))
}
