package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// PlanetService exposes the read-only planet surface. There is no create,
// update, or delete — planets are seeded externally (cmd/seed).
type PlanetService struct {
	repo   repository.PlanetRepository
	logger *slog.Logger
}

func NewPlanetService(repo repository.PlanetRepository, logger *slog.Logger) *PlanetService {
	return &PlanetService{repo: repo, logger: logger}
}

// List returns all planets; an empty table maps to "No planets found" (404).
func (s *PlanetService) List(ctx context.Context) ([]model.Planet, error) {
	planets, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list planets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing planets: %w", err)
	}
	if len(planets) == 0 {
		return nil, apperror.NotFoundf("No planets found")
	}
	return planets, nil
}

// Get returns a single planet by id.
func (s *PlanetService) Get(ctx context.Context, id int64) (*model.Planet, error) {
	return s.repo.FindByID(ctx, id)
}
