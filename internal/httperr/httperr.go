package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteBusiness maps a BusinessError kind to its HTTP status. Unknown errors
// become a generic 500 so internals never leak.
func WriteBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	case KindSlotUnavailable:
		Write(c, http.StatusConflict, be.Code, be.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, be.Code, be.Message)
	case KindInvalidState:
		Write(c, http.StatusUnprocessableEntity, be.Code, be.Message)
	case KindForbidden:
		Write(c, http.StatusForbidden, be.Code, be.Message)
	default:
		Internal(c, be.Code, be.Message)
	}
}
