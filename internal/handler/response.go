package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Extraction failures carry the underlying cause in the message so the caller
// can see what the model or provider returned.
func MapDomainError(err error) (status int, code, msg string) {
	var rlErr *extractor.RateLimitError
	switch {
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests, "RATE_LIMITED", rlErr.Provider + " rate limit exceeded; retry later"
	case errors.Is(err, domain.ErrInvalidTranscript):
		return http.StatusUnprocessableEntity, "INVALID_TRANSCRIPT", err.Error()
	case errors.Is(err, domain.ErrInvalidLLMOutput):
		return http.StatusUnprocessableEntity, "INVALID_LLM_OUTPUT", err.Error()
	case errors.Is(err, domain.ErrSchemaValidation):
		return http.StatusUnprocessableEntity, "SCHEMA_VALIDATION_FAILED", err.Error()
	case errors.Is(err, domain.ErrInvalidSegmentReference):
		return http.StatusUnprocessableEntity, "INVALID_SEGMENT_REFERENCE", err.Error()
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrProviderNotConfigured):
		return http.StatusInternalServerError, "PROVIDER_NOT_CONFIGURED", err.Error()
	case errors.Is(err, domain.ErrProviderFailure):
		return http.StatusInternalServerError, "EXTRACTION_FAILED", "Extraction failed: " + err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		slog.ErrorContext(c.Request.Context(), "internal error", "request_id", requestID, "error", err)
	}
	var rlErr *extractor.RateLimitError
	if errors.As(err, &rlErr) {
		c.Header("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
	}
	RespondError(c, status, code, msg)
}
