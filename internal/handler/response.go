package handler

// RESPONSE HELPERS:
// Every response from this API is a JSON object (or a top-level array for
// list endpoints), and every failure uses the same envelope:
//
//	400/404: {"msg": "<exact contract message>"}
//	500:     {"msg": "Server error", "error": "<error text>"}
//
// writeJSON/writeError centralise that so handlers stay small and the shape
// can't drift between endpoints.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/starwars-api/internal/apperror"
)

// MessageResponse is the `{"msg": ...}` envelope used for confirmations and
// for 400/404 failures.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// serverErrorResponse is the catch-all 500 envelope. The contract exposes the
// underlying error text in the "error" field — anything unexpected becomes
// 500 with the message attached, rather than a differentiated taxonomy.
type serverErrorResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code.
//
// Headers must be set before WriteHeader, and WriteHeader before the body —
// once Encode writes, header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone at this point — log is all we can do.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the contract's HTTP status and envelope.
//
// AppError (via errors.As) → 400 for validation, 404 for not-found, carrying
// the exact message the error was built with. Everything else is the single
// top-level fault boundary: 500 {"msg":"Server error","error":...}.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, MessageResponse{Msg: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
		Msg:   "Server error",
		Error: err.Error(),
	})
}
