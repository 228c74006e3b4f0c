package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError translates the application error taxonomy to HTTP statuses.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.ErrValidation, apperrors.ErrExport:
		status = http.StatusBadRequest
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
