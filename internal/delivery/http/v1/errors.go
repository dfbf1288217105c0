package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errTitleRequired      = errors.New("title is required")
	errRouteNotFound      = errors.New("route not found")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Detail carries the underlying error outside production.
	Detail string `json:"error,omitempty"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	body := gin.H{
		"success": false,
		"message": err.Message,
	}
	if err.Detail != "" {
		body["error"] = err.Detail
	}
	c.AbortWithStatusJSON(err.Code, body)
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// newInternalError hides cause unless the handler runs outside production.
func (h *handlerImpl) newInternalError(message string, cause error) apiError {
	apiErr := newAPIError(http.StatusInternalServerError, message)
	if cause != nil && h.exposeErrors() {
		apiErr.Detail = cause.Error()
	}
	return apiErr
}
