package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"talento/internal/domain/employee"
	"talento/internal/domain/identity"
	"talento/internal/domain/profile"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailDomain maps the domain sentinels onto HTTP statuses so every
// handler reports the same way. Unrecognized errors become opaque 500s.
func FailDomain(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, identity.ErrInvalidChallenge):
		Fail(w, http.StatusUnauthorized, "invalid_challenge", err.Error(), requestID)
	case errors.Is(err, identity.ErrWrongCredentials):
		Fail(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), requestID)
	case errors.Is(err, identity.ErrWrongPassword):
		Fail(w, http.StatusUnauthorized, "invalid_password", err.Error(), requestID)
	case errors.Is(err, identity.ErrRoleMismatch):
		Fail(w, http.StatusUnauthorized, "role_mismatch", err.Error(), requestID)
	case errors.Is(err, identity.ErrAccountNotFound):
		Fail(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), requestID)
	case errors.Is(err, employee.ErrValidation), errors.Is(err, profile.ErrValidation):
		Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case errors.Is(err, profile.ErrUnknownSection):
		Fail(w, http.StatusBadRequest, "unknown_section", err.Error(), requestID)
	case errors.Is(err, employee.ErrNotFound), errors.Is(err, profile.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, employee.ErrConflict), errors.Is(err, identity.ErrAccountConflict):
		Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case errors.Is(err, employee.ErrAccountProvisioning):
		Fail(w, http.StatusInternalServerError, "account_provisioning", err.Error(), requestID)
	default:
		slog.Error("unhandled domain error", "err", err, "requestId", requestID)
		Fail(w, http.StatusInternalServerError, "internal_error", "error interno", requestID)
	}
}

// PDF streams a rendered document as an attachment.
func PDF(w http.ResponseWriter, filename string, payload []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		slog.Warn("write pdf failed", "err", err)
	}
}
