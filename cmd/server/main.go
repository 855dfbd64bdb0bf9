// Package main is the entry point for the API server.
//
// main() stays minimal: read configuration, create the logger, start the
// server. All actual logic lives in the imported internal packages — the
// cmd/ directory is a Go convention for executable entry points, and a
// project may have several (here: cmd/server and cmd/seed).
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sakif/starwars-api/internal/server"
)

func main() {
	// Load a .env file if present. Real environment variables win over .env
	// entries, so deployments can override without editing files.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Port 3000 is the historical default for this API.
	port := 3000
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	dbPath := "data/starwars.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}

	// Ensure the data directory exists (like `mkdir -p`). ":memory:" has no
	// directory component worth creating, so skip it.
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", filepath.Dir(dbPath)),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(server.Config{
		Port:   port,
		DBPath: dbPath,
	}, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
