package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// UserRepo implements repository.UserRepository over the shared pool.
type UserRepo struct {
	conn *sql.DB
}

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` assigns a nil *Y to a variable of interface type X.
// If *Y doesn't implement X, the compiler errors immediately instead of at
// some distant call site.
var _ repository.UserRepository = (*UserRepo)(nil)

// Insert persists a new user and fills in the store-assigned id.
//
// We take *model.User so we can write the generated id back into the caller's
// struct — the create-user response body needs it.
func (r *UserRepo) Insert(ctx context.Context, user *model.User) error {
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO users (email, password, is_active) VALUES (?, ?, ?)`,
		user.Email,
		user.Password,
		user.IsActive,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user: %w", err)
	}

	// LastInsertId returns the AUTOINCREMENT value SQLite assigned.
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// FindByID retrieves a user by id.
// Returns apperror.ErrNotFound (wrapped) if no such user exists.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, email, password, is_active FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive)
	if err != nil {
		// sql.ErrNoRows is a sentinel, not a real failure — translate it to
		// our domain not-found error so handlers can map it to 404. The
		// message format (no space after "user") is part of the API contract.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFoundf("user%d not found", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}

	return &u, nil
}

// FindAll returns every user in primary-key order. An empty table yields an
// empty slice, not an error — the empty-set-to-404 rule lives in the service.
func (r *UserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, email, password, is_active FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}

	return users, nil
}
