package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// Business result codes carried alongside the HTTP status so the desktop
// client can branch without string-matching messages.
const (
	CodeOK            = 0
	CodeInvalidParam  = 40001
	CodeNotFound      = 40401
	CodeStateConflict = 40901
	CodeMismatch      = 40902
	CodeServerErr     = 50001
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// Fail maps a domain error to its HTTP status and business code.
func Fail(c *gin.Context, err error) {
	status, code := classify(err)
	Error(c, status, code, err.Error())
}

func classify(err error) (httpStatus, code int) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CodeInvalidParam
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrMismatch):
		return http.StatusConflict, CodeMismatch
	case errors.Is(err, domain.ErrStateConflict):
		return http.StatusConflict, CodeStateConflict
	default:
		return http.StatusInternalServerError, CodeServerErr
	}
}
