package response

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	Created             = http.StatusCreated
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	PreconditionFailed  = http.StatusPreconditionFailed
	InternalServerError = http.StatusInternalServerError
)

// Success 返回 {message}
func Success(c *gin.Context, status int, message any) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// Data 直接返回数据本体
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Fail 返回 {errorMessage}
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{ErrorMessage: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, PreconditionFailed, service.ErrDataFormat.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, PreconditionFailed, service.ErrDataFormat.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
