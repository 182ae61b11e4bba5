package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TheoAcker12/weekly-scheduler/internal/store"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

// Error codes carried in error responses.
const (
	CodeBadRequest         = "bad_request"
	CodeNotFound           = "not_found"
	CodeReadOnly           = "read_only"
	CodeInternalError      = "internal_error"
	CodeBackendUnavailable = "backend_unavailable"
	CodeBackendTimeout     = "backend_timeout"
)

var statusForCode = map[string]int{
	CodeBadRequest:         http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeReadOnly:           http.StatusNotImplemented,
	CodeInternalError:      http.StatusInternalServerError,
	CodeBackendUnavailable: http.StatusBadGateway,
	CodeBackendTimeout:     http.StatusGatewayTimeout,
}

// ErrorBody is the error object of an error response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes body as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Default().Warn("failed to encode a response", "error", err)
		}
	}
}

// WriteError writes an error response for code. Unknown codes are sent as 500.
func WriteError(w http.ResponseWriter, r *http.Request, code string, message string) {
	status, ok := statusForCode[code]
	if !ok {
		code, status = CodeInternalError, http.StatusInternalServerError
	}
	WriteJSON(w, status, errorResponse{Error: ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: RequestIDFrom(r.Context()),
	}})
}

// writeServiceError maps errors of the weekly service to responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrScheduleNotFound):
		WriteError(w, r, CodeNotFound, err.Error())
	case errors.Is(err, store.ErrFieldNotFound):
		WriteError(w, r, CodeBadRequest, err.Error())
	case errors.Is(err, weekly.ErrReadOnlySource):
		WriteError(w, r, CodeReadOnly, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		slog.Default().Error("data source timed out", "error", err, "request_id", RequestIDFrom(r.Context()))
		WriteError(w, r, CodeBackendTimeout, "data source timed out")
	default:
		slog.Default().Error("data source failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		WriteError(w, r, CodeBackendUnavailable, "data source unavailable")
	}
}
