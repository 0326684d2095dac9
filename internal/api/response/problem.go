package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Error codes carried in problem payloads.
const (
	CodeNotFound    = "SOFTWARE_ENGINEER_NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeInvalidID   = "INVALID_ID"
	CodeInvalidJSON = "INVALID_JSON"
	CodeInternal    = "INTERNAL_SERVER_ERROR"
)

// Problem is the structured error payload returned by every failing
// endpoint, shaped after RFC 7807 problem details.
type Problem struct {
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	Instance  string `json:"instance"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Err writes a problem payload. instance should be the request path and
// requestID the id injected by the RequestID middleware.
func Err(w http.ResponseWriter, status int, code, title, detail, instance, requestID string) {
	JSON(w, status, Problem{
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	})
}

// ErrWithDetails writes a problem payload carrying per-field errors.
func ErrWithDetails(w http.ResponseWriter, status int, code, title, detail, instance, requestID string, details any) {
	JSON(w, status, Problem{
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
		Errors:    details,
	})
}
