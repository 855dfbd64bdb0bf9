package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// PersonRepo implements repository.PersonRepository over the shared pool.
// Same shape as PlanetRepo: read-only through the API, Insert for seeding.
type PersonRepo struct {
	conn *sql.DB
}

var _ repository.PersonRepository = (*PersonRepo)(nil)

func (r *PersonRepo) Insert(ctx context.Context, person *model.Person) error {
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO people (name, gender, birth_year) VALUES (?, ?, ?)`,
		person.Name,
		person.Gender,
		person.BirthYear,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted person id: %w", err)
	}
	person.ID = id

	return nil
}

func (r *PersonRepo) FindByID(ctx context.Context, id int64) (*model.Person, error) {
	var p model.Person

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, gender, birth_year FROM people WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Gender, &p.BirthYear)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundf("Person with ID %d not found", id)
		}
		return nil, fmt.Errorf("sqlite: getting person %d: %w", id, err)
	}

	return &p, nil
}

func (r *PersonRepo) FindAll(ctx context.Context) ([]model.Person, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, gender, birth_year FROM people ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing people: %w", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Gender, &p.BirthYear); err != nil {
			return nil, fmt.Errorf("sqlite: scanning person row: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating people: %w", err)
	}

	return people, nil
}
