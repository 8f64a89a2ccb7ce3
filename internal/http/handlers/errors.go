package handlers

import (
	"context"
	"errors"
	"net/http"

	"dentalclinic/internal/domain"
	"dentalclinic/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// domainStatus maps a domain error to its HTTP status and code.
func domainStatus(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error"
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case domain.IsUnavailable(err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "source_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	status, code := domainStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "ocorreu um erro interno"
	}
	respondError(c, status, code, msg, nil)
}
