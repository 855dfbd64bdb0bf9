package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/service"
)

// UserHandler serves the /user endpoints.
type UserHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

func NewUserHandler(service *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// createUserRequest uses *string, not string, so we can tell "field absent"
// apart from "field present but empty". Only absence is an error — and per
// the contract it's a hard 500, not a validation 400.
type createUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// createUserResponse echoes the store-assigned id back to the caller.
type createUserResponse struct {
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
}

// HandleList returns all users.
//
// HTTP: GET /user → 200 [user...] | 404 {"msg":"not found"} when empty
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleGetByID returns a single user.
//
// HTTP: GET /user/{id} → 200 user | 404 {"msg":"user<id> not found"}
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// The router constrains {id} to digits, so this only triggers on
		// overflow — which is just another id with no matching row.
		writeError(w, apperror.NotFoundf("user%s not found", raw))
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleCreate registers a new user.
//
// HTTP: POST /user {"email":..,"password":..} → 201 {"msg":"User created","user_id":N}
//
// A malformed body or a missing required field falls through to the 500
// catch-all envelope — presence failures here are deliberately NOT soft 400s.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid user JSON", slog.String("error", err.Error()))
		writeError(w, fmt.Errorf("decoding request body: %w", err))
		return
	}

	if req.Email == nil {
		writeError(w, fmt.Errorf("missing required field %q", "email"))
		return
	}
	if req.Password == nil {
		writeError(w, fmt.Errorf("missing required field %q", "password"))
		return
	}

	user, err := h.service.Create(r.Context(), *req.Email, *req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{
		Msg:    "User created",
		UserID: user.ID,
	})
}
