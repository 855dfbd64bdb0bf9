// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the "composition root": main.go hands over config, and New() wires
// the whole dependency chain in one place:
//
//	sqlite.DB → repositories → services → handlers → routes
//
// Handlers never touch the database, services never touch HTTP. The store
// handle is owned by the Server and injected downward — nothing global.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/starwars-api/internal/auth"
	"github.com/sakif/starwars-api/internal/handler"
	"github.com/sakif/starwars-api/internal/middleware"
	sqliteRepo "github.com/sakif/starwars-api/internal/repository/sqlite"
	"github.com/sakif/starwars-api/internal/service"
)

// Config holds server configuration. A struct (instead of positional
// parameters) lets us add options without touching every call site.
type Config struct {
	Port   int
	DBPath string // path to the SQLite database file, or ":memory:"
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so pending WAL writes are flushed.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with all dependencies wired.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the full HTTP surface:
//
//	GET    /user                          → list users
//	GET    /user/{id}                     → get user
//	POST   /user                          → create user
//	GET    /planets                       → list planets
//	GET    /planets/{id}                  → get planet
//	GET    /users/{id}/favorites          → list a user's favorites
//	POST   /favorite/planet/{planet_id}   → add favorite planet
//	DELETE /favorite/planet/{planet_id}   → remove favorite planet
//	POST   /favorite/people/{people_id}   → add favorite person
//	DELETE /favorite/people/{people_id}   → remove favorite person
//
// The {id:[0-9]+} regex patterns reject non-numeric ids at the router with a
// plain 404, so handlers only ever see digit strings.
func (s *Server) setupRoutes() {
	// Global middleware, in order: request ID for tracing, real client IP
	// from proxy headers, panic recovery, then our request logger.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	passwords := auth.NewPasswordService()

	userService := service.NewUserService(s.db.Users(), passwords, s.logger)
	planetService := service.NewPlanetService(s.db.Planets(), s.logger)
	favoriteService := service.NewFavoriteService(
		s.db.Favorites(), s.db.Planets(), s.db.People(), s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	planetHandler := handler.NewPlanetHandler(planetService, s.logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, s.logger)

	s.router.Get("/user", userHandler.HandleList)
	s.router.Get("/user/{id:[0-9]+}", userHandler.HandleGetByID)
	s.router.Post("/user", userHandler.HandleCreate)

	s.router.Get("/planets", planetHandler.HandleList)
	s.router.Get("/planets/{id:[0-9]+}", planetHandler.HandleGetByID)

	s.router.Get("/users/{id:[0-9]+}/favorites", favoriteHandler.HandleListForUser)
	s.router.Route("/favorite", func(r chi.Router) {
		r.Post("/planet/{planet_id:[0-9]+}", favoriteHandler.HandleAddPlanet)
		r.Delete("/planet/{planet_id:[0-9]+}", favoriteHandler.HandleRemovePlanet)
		r.Post("/people/{people_id:[0-9]+}", favoriteHandler.HandleAddPerson)
		r.Delete("/people/{people_id:[0-9]+}", favoriteHandler.HandleRemovePerson)
	})
}

// Handler exposes the router, mainly for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database connection. Start() does this itself; Close is
// for callers (tests) that never Start.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30s to
// drain, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
