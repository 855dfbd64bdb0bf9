package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// FavoriteService implements the favorites contract — the one genuinely
// order-sensitive piece of the API:
//
//  1. user_id presence check first (falsy: 0 counts as missing → 400)
//  2. target existence check second (missing planet/person → 404)
//  3. mutation last
//
// Two behaviors are preserved deliberately, not by accident:
//   - The USER is never validated. Favoriting with an unknown user_id
//     succeeds; listing favorites for an unknown user is just an empty set.
//   - No duplicate check. Adding the same favorite twice creates two rows,
//     and removal deletes only the first (lowest-id) match.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	planets   repository.PlanetRepository
	people    repository.PersonRepository
	logger    *slog.Logger
}

func NewFavoriteService(
	favorites repository.FavoriteRepository,
	planets repository.PlanetRepository,
	people repository.PersonRepository,
	logger *slog.Logger,
) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		planets:   planets,
		people:    people,
		logger:    logger,
	}
}

// ListForUser returns a user's favorites. No favorites — including the case
// where the user itself doesn't exist — maps to a 404 with the user id in
// the message.
func (s *FavoriteService) ListForUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	favorites, err := s.favorites.FindAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list favorites",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	if len(favorites) == 0 {
		return nil, apperror.NotFoundf("No favorites found for user %d", userID)
	}
	return favorites, nil
}

// requireUserID reproduces the contract's falsy check: a user_id of 0 — which
// is also what an absent JSON field decodes to — counts as missing. Negative
// ids pass; they are "truthy" and simply never match anything.
func requireUserID(userID int64) error {
	if userID == 0 {
		return apperror.ValidationFailed("user_id", "User ID is required")
	}
	return nil
}

// AddPlanet records that userID favorited planetID. The planet must exist;
// the user is not checked.
func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*model.Favorite, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	// Target existence — the repository's not-found error already carries the
	// "Planet with ID <id> not found" message.
	if _, err := s.planets.FindByID(ctx, planetID); err != nil {
		return nil, err
	}

	favorite := &model.Favorite{
		UserID:   userID,
		PlanetID: &planetID,
	}
	if err := s.favorites.Insert(ctx, favorite); err != nil {
		s.logger.Error("failed to add favorite planet",
			slog.Int64("user_id", userID),
			slog.Int64("planet_id", planetID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding favorite planet: %w", err)
	}

	s.logger.Info("favorite planet added",
		slog.Int64("id", favorite.ID),
		slog.Int64("user_id", userID),
		slog.Int64("planet_id", planetID),
	)

	return favorite, nil
}

// RemovePlanet deletes the first (lowest-id) favorite matching
// (userID, planetID). With duplicates present, each call removes one row.
func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}

	favorite, err := s.favorites.FindFirstByPlanet(ctx, userID, planetID)
	if err != nil {
		return err
	}

	if err := s.favorites.DeleteByID(ctx, favorite.ID); err != nil {
		s.logger.Error("failed to remove favorite planet",
			slog.Int64("id", favorite.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("removing favorite planet: %w", err)
	}

	s.logger.Info("favorite planet removed",
		slog.Int64("id", favorite.ID),
		slog.Int64("user_id", userID),
		slog.Int64("planet_id", planetID),
	)

	return nil
}

// AddPerson is the people counterpart of AddPlanet.
func (s *FavoriteService) AddPerson(ctx context.Context, userID, peopleID int64) (*model.Favorite, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	if _, err := s.people.FindByID(ctx, peopleID); err != nil {
		return nil, err
	}

	favorite := &model.Favorite{
		UserID:   userID,
		PeopleID: &peopleID,
	}
	if err := s.favorites.Insert(ctx, favorite); err != nil {
		s.logger.Error("failed to add favorite person",
			slog.Int64("user_id", userID),
			slog.Int64("people_id", peopleID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding favorite person: %w", err)
	}

	s.logger.Info("favorite person added",
		slog.Int64("id", favorite.ID),
		slog.Int64("user_id", userID),
		slog.Int64("people_id", peopleID),
	)

	return favorite, nil
}

// RemovePerson is the people counterpart of RemovePlanet.
func (s *FavoriteService) RemovePerson(ctx context.Context, userID, peopleID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}

	favorite, err := s.favorites.FindFirstByPerson(ctx, userID, peopleID)
	if err != nil {
		return err
	}

	if err := s.favorites.DeleteByID(ctx, favorite.ID); err != nil {
		s.logger.Error("failed to remove favorite person",
			slog.Int64("id", favorite.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("removing favorite person: %w", err)
	}

	s.logger.Info("favorite person removed",
		slog.Int64("id", favorite.ID),
		slog.Int64("user_id", userID),
		slog.Int64("people_id", peopleID),
	)

	return nil
}
