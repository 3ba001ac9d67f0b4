package api

import (
	"encoding/json"
	"net/http"
)

// Common error codes surfaced to API clients.
const (
	ErrCodeInvalidMint     = "INVALID_MINT"
	ErrCodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUpstreamTimeout = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamError   = "UPSTREAM_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// apiError is the JSON error payload.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps an apiError.
type errorResponse struct {
	Error apiError `json:"error"`
}

// respondError sends a JSON error response.
func respondError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Error: apiError{Code: code, Message: message}})
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
