package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/service"
)

// PlanetHandler serves the read-only /planets endpoints.
type PlanetHandler struct {
	service *service.PlanetService
	logger  *slog.Logger
}

func NewPlanetHandler(service *service.PlanetService, logger *slog.Logger) *PlanetHandler {
	return &PlanetHandler{service: service, logger: logger}
}

// HandleList returns all planets.
//
// HTTP: GET /planets → 200 [planet...] | 404 {"msg":"No planets found"} when empty
func (h *PlanetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	planets, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planets)
}

// HandleGetByID returns a single planet.
//
// HTTP: GET /planets/{id} → 200 planet | 404 {"msg":"Planet with ID <id> not found"}
func (h *PlanetHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, apperror.NotFoundf("Planet with ID %s not found", raw))
		return
	}

	planet, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planet)
}
