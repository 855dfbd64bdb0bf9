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

// FavoriteHandler serves the favorites endpoints:
//
//	GET    /users/{id}/favorites
//	POST   /favorite/planet/{planet_id}
//	DELETE /favorite/planet/{planet_id}
//	POST   /favorite/people/{people_id}
//	DELETE /favorite/people/{people_id}
type FavoriteHandler struct {
	service *service.FavoriteService
	logger  *slog.Logger
}

func NewFavoriteHandler(service *service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{service: service, logger: logger}
}

// favoriteRequest is the body for all four favorite mutations.
//
// An absent user_id decodes to 0, and 0 is exactly what the contract's falsy
// check treats as missing — so a plain int64 is sufficient here, unlike the
// *string fields in createUserRequest.
type favoriteRequest struct {
	UserID int64 `json:"user_id"`
}

// pathID parses a numeric path parameter. The router's regex patterns keep
// non-numeric segments out, so failures here mean overflow; the caller maps
// them to the resource's not-found message.
func pathID(r *http.Request, name string) (int64, string, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, raw, err
}

// decodeBody reads the mutation body. A missing or malformed body is an
// unexpected failure (500 envelope), not a validation error — only a present
// body with a falsy user_id produces the 400.
func (h *FavoriteHandler) decodeBody(r *http.Request) (favoriteRequest, error) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid favorite JSON", slog.String("error", err.Error()))
		return req, fmt.Errorf("decoding request body: %w", err)
	}
	return req, nil
}

// HandleListForUser returns all favorites belonging to a user.
//
// HTTP: GET /users/{id}/favorites → 200 [favorite...]
// | 404 {"msg":"No favorites found for user <id>"} when empty
//
// The user itself is never looked up: an unknown user just has no favorites.
func (h *FavoriteHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, raw, err := pathID(r, "id")
	if err != nil {
		writeError(w, apperror.NotFoundf("No favorites found for user %s", raw))
		return
	}

	favorites, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// HandleAddPlanet links a planet to a user's favorites.
//
// HTTP: POST /favorite/planet/{planet_id} {"user_id":N}
// → 201 {"msg":"Planet <planet_id> added to favorites for user <user_id>"}
// | 400 when user_id is missing/zero | 404 when the planet doesn't exist
func (h *FavoriteHandler) HandleAddPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, raw, err := pathID(r, "planet_id")
	if err != nil {
		writeError(w, apperror.NotFoundf("Planet with ID %s not found", raw))
		return
	}

	req, err := h.decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.AddPlanet(r.Context(), req.UserID, planetID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Msg: fmt.Sprintf("Planet %d added to favorites for user %d", planetID, req.UserID),
	})
}

// HandleRemovePlanet removes one matching favorite row (the first match —
// duplicates survive until removed one call at a time).
//
// HTTP: DELETE /favorite/planet/{planet_id} {"user_id":N}
// → 200 {"msg":"Planet <planet_id> removed from favorites for user <user_id>"}
// | 400 | 404 {"msg":"Favorite planet with ID <planet_id> not found for user <user_id>"}
func (h *FavoriteHandler) HandleRemovePlanet(w http.ResponseWriter, r *http.Request) {
	planetID, raw, err := pathID(r, "planet_id")
	if err != nil {
		writeError(w, apperror.NotFoundf("Planet with ID %s not found", raw))
		return
	}

	req, err := h.decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.RemovePlanet(r.Context(), req.UserID, planetID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Msg: fmt.Sprintf("Planet %d removed from favorites for user %d", planetID, req.UserID),
	})
}

// HandleAddPerson is the people counterpart of HandleAddPlanet.
//
// HTTP: POST /favorite/people/{people_id} {"user_id":N}
// → 201 {"msg":"Person <people_id> added to favorites for user <user_id>"}
func (h *FavoriteHandler) HandleAddPerson(w http.ResponseWriter, r *http.Request) {
	peopleID, raw, err := pathID(r, "people_id")
	if err != nil {
		writeError(w, apperror.NotFoundf("Person with ID %s not found", raw))
		return
	}

	req, err := h.decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.AddPerson(r.Context(), req.UserID, peopleID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Msg: fmt.Sprintf("Person %d added to favorites for user %d", peopleID, req.UserID),
	})
}

// HandleRemovePerson is the people counterpart of HandleRemovePlanet.
//
// HTTP: DELETE /favorite/people/{people_id} {"user_id":N}
// → 200 {"msg":"Person <people_id> removed from favorites for user <user_id>"}
func (h *FavoriteHandler) HandleRemovePerson(w http.ResponseWriter, r *http.Request) {
	peopleID, raw, err := pathID(r, "people_id")
	if err != nil {
		writeError(w, apperror.NotFoundf("Person with ID %s not found", raw))
		return
	}

	req, err := h.decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.RemovePerson(r.Context(), req.UserID, peopleID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Msg: fmt.Sprintf("Person %d removed from favorites for user %d", peopleID, req.UserID),
	})
}
