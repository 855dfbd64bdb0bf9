package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// FavoriteRepo implements repository.FavoriteRepository over the shared pool.
type FavoriteRepo struct {
	conn *sql.DB
}

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// Insert persists a favorite association row. The caller is responsible for
// having validated the target (planet/person) — user existence is deliberately
// NOT checked anywhere, and duplicates are allowed: calling Insert twice with
// the same (user, target) pair creates two distinct rows.
func (r *FavoriteRepo) Insert(ctx context.Context, favorite *model.Favorite) error {
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO favorites (user_id, planet_id, people_id) VALUES (?, ?, ?)`,
		favorite.UserID,
		favorite.PlanetID, // nil pointer → SQL NULL
		favorite.PeopleID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting favorite: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted favorite id: %w", err)
	}
	favorite.ID = id

	return nil
}

// FindAllByUser returns all favorites for a user in primary-key order.
// An unknown user simply yields an empty slice — no user lookup happens here.
func (r *FavoriteRepo) FindAllByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating favorites: %w", err)
	}

	return favorites, nil
}

// FindFirstByPlanet returns the oldest favorite row for (user, planet).
//
// ORDER BY id LIMIT 1 pins down which row "first match" means when duplicates
// exist: the lowest id, i.e. insertion order. Removal deletes exactly this
// row and leaves the duplicates in place.
func (r *FavoriteRepo) FindFirstByPlanet(ctx context.Context, userID, planetID int64) (*model.Favorite, error) {
	var f model.Favorite

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, user_id, planet_id, people_id FROM favorites
		 WHERE user_id = ? AND planet_id = ?
		 ORDER BY id LIMIT 1`,
		userID, planetID,
	).Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundf(
				"Favorite planet with ID %d not found for user %d", planetID, userID)
		}
		return nil, fmt.Errorf("sqlite: finding favorite planet %d for user %d: %w",
			planetID, userID, err)
	}

	return &f, nil
}

// FindFirstByPerson is the people counterpart of FindFirstByPlanet.
func (r *FavoriteRepo) FindFirstByPerson(ctx context.Context, userID, peopleID int64) (*model.Favorite, error) {
	var f model.Favorite

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, user_id, planet_id, people_id FROM favorites
		 WHERE user_id = ? AND people_id = ?
		 ORDER BY id LIMIT 1`,
		userID, peopleID,
	).Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundf(
				"Favorite person with ID %d not found for user %d", peopleID, userID)
		}
		return nil, fmt.Errorf("sqlite: finding favorite person %d for user %d: %w",
			peopleID, userID, err)
	}

	return &f, nil
}

// DeleteByID removes a single favorite row. RowsAffected detects "already
// gone" — a concurrent double-delete legitimately surfaces as not-found on
// the second caller.
func (r *FavoriteRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting favorite %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFoundf("favorite %d not found", id)
	}

	return nil
}
