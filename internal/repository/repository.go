// Package repository declares the storage interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
//
// The interfaces are deliberately explicit — FindByID, FindAll, Insert,
// DeleteByID — rather than an ORM-ish active-record surface. Absence is
// reported as apperror.ErrNotFound, so callers branch on errors.Is instead
// of nil-object checks.
package repository

import (
	"context"

	"github.com/sakif/starwars-api/internal/model"
)

type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
}

// PlanetRepository and PersonRepository have no delete/update: both entities
// are read-only in the API. Insert exists for seeding (cmd/seed) and tests.
type PlanetRepository interface {
	Insert(ctx context.Context, planet *model.Planet) error
	FindByID(ctx context.Context, id int64) (*model.Planet, error)
	FindAll(ctx context.Context) ([]model.Planet, error)
}

type PersonRepository interface {
	Insert(ctx context.Context, person *model.Person) error
	FindByID(ctx context.Context, id int64) (*model.Person, error)
	FindAll(ctx context.Context) ([]model.Person, error)
}

// FavoriteRepository models the association rows. FindFirstByPlanet and
// FindFirstByPerson return the lowest-id match — duplicate favorites are
// legal, and removal must take out exactly one row per call.
type FavoriteRepository interface {
	Insert(ctx context.Context, favorite *model.Favorite) error
	FindAllByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	FindFirstByPlanet(ctx context.Context, userID, planetID int64) (*model.Favorite, error)
	FindFirstByPerson(ctx context.Context, userID, peopleID int64) (*model.Favorite, error)
	DeleteByID(ctx context.Context, id int64) error
}
