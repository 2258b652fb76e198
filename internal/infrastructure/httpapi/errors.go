package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"webdesk/internal/domain"
)

type apiErrorBody struct {
	Success bool     `json:"success"`
	Error   apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code string, message string, details interface{}) {
	if code == "" {
		code = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErrorBody{Error: apiError{Code: code, Message: message, Details: details}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the error taxonomy onto HTTP statuses and
// machine-checkable codes.
func writeDomainError(w http.ResponseWriter, err error, details interface{}) {
	var inj *domain.InjectionError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error(), details)
	case errors.Is(err, domain.ErrNoFrameYet):
		// the session exists but has produced no output; not a failure
		writeError(w, http.StatusOK, "NO_FRAME_YET", err.Error(), details)
	case errors.Is(err, domain.ErrSessionInactive):
		writeError(w, http.StatusGone, "SESSION_INACTIVE", err.Error(), details)
	case errors.Is(err, domain.ErrUnsupportedAction):
		writeError(w, http.StatusBadRequest, "UNSUPPORTED_ACTION", err.Error(), details)
	case errors.Is(err, domain.ErrTransferNotFound):
		writeError(w, http.StatusNotFound, "TRANSFER_NOT_FOUND", err.Error(), details)
	case errors.Is(err, domain.ErrInvalidTransferState):
		writeError(w, http.StatusConflict, "INVALID_TRANSFER_STATE", err.Error(), details)
	case errors.Is(err, domain.ErrFrameSourceConflict):
		writeError(w, http.StatusConflict, "FRAME_SOURCE_CONFLICT", err.Error(), details)
	case errors.As(err, &inj):
		writeError(w, http.StatusBadGateway, "INJECTION_FAILED", inj.Error(), map[string]any{"reason": inj.Reason})
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), details)
	}
}
