// Package service contains the business logic layer of the application.
//
// The layering follows the usual three-layer split:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces the contract's rules
//	Repository (data layer)  → reads/writes the database
//
// Services take repository interfaces, not concrete types, so tests can
// inject in-memory mocks and the HTTP layer never touches SQL.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/starwars-api/internal/apperror"
	"github.com/sakif/starwars-api/internal/auth"
	"github.com/sakif/starwars-api/internal/model"
	"github.com/sakif/starwars-api/internal/repository"
)

// UserService handles user listing, lookup, and creation.
type UserService struct {
	repo      repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewUserService(repo repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

// List returns all users.
//
// EMPTY IS NOT FOUND:
// An empty users table is reported as a not-found error ("not found", 404),
// NOT as an empty list with 200. That is the API contract, odd as it looks,
// and list endpoints for the other resources behave the same way.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	if len(users) == 0 {
		return nil, apperror.NotFoundf("not found")
	}
	return users, nil
}

// Get returns a single user by id. The repository already formats the
// contract's "user<id> not found" message for the missing case.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create hashes the password, persists the user, and returns it with the
// store-assigned id. New users are always active.
//
// Presence of email/password is checked at the handler boundary, not here —
// and a missing field is a hard 500, not a 400. See handler.UserHandler.
func (s *UserService) Create(ctx context.Context, email, password string) (*model.User, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:    email,
		Password: hash,
		IsActive: true,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.Int64("id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}
