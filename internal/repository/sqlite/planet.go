package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// PlanetRepo implements repository.PlanetRepository over the shared pool.
// Planets are read-only through the API; Insert exists for cmd/seed and tests.
type PlanetRepo struct {
	conn *sql.DB
}

var _ repository.PlanetRepository = (*PlanetRepo)(nil)

func (r *PlanetRepo) Insert(ctx context.Context, planet *model.Planet) error {
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO planets (name, climate, terrain, population) VALUES (?, ?, ?, ?)`,
		planet.Name,
		planet.Climate,
		planet.Terrain,
		planet.Population,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting planet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted planet id: %w", err)
	}
	planet.ID = id

	return nil
}

func (r *PlanetRepo) FindByID(ctx context.Context, id int64) (*model.Planet, error) {
	var p model.Planet

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, climate, terrain, population FROM planets WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain, &p.Population)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundf("Planet with ID %d not found", id)
		}
		return nil, fmt.Errorf("sqlite: getting planet %d: %w", id, err)
	}

	return &p, nil
}

func (r *PlanetRepo) FindAll(ctx context.Context) ([]model.Planet, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, climate, terrain, population FROM planets ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing planets: %w", err)
	}
	defer rows.Close()

	var planets []model.Planet
	for rows.Next() {
		var p model.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain, &p.Population); err != nil {
			return nil, fmt.Errorf("sqlite: scanning planet row: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating planets: %w", err)
	}

	return planets, nil
}
