// Package main seeds the planets and people tables.
//
// Planets and people are read-only through the API — there is no create
// endpoint — so this binary is how a fresh database gets its catalogue data.
// Running it twice appends a second copy of the catalogue; it does not
// deduplicate.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sakif/starwars-api/internal/model"
	sqliteRepo "github.com/sakif/starwars-api/internal/repository/sqlite"
)

var planets = []model.Planet{
	{Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: "200000"},
	{Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains", Population: "2000000000"},
	{Name: "Yavin IV", Climate: "temperate, tropical", Terrain: "jungle, rainforests", Population: "1000"},
	{Name: "Hoth", Climate: "frozen", Terrain: "tundra, ice caves", Population: "unknown"},
	{Name: "Dagobah", Climate: "murky", Terrain: "swamp, jungles", Population: "unknown"},
	{Name: "Bespin", Climate: "temperate", Terrain: "gas giant", Population: "6000000"},
	{Name: "Endor", Climate: "temperate", Terrain: "forests, mountains", Population: "30000000"},
	{Name: "Naboo", Climate: "temperate", Terrain: "grassy hills, swamps", Population: "4500000000"},
}

var people = []model.Person{
	{Name: "Luke Skywalker", Gender: "male", BirthYear: "19BBY"},
	{Name: "C-3PO", Gender: "n/a", BirthYear: "112BBY"},
	{Name: "R2-D2", Gender: "n/a", BirthYear: "33BBY"},
	{Name: "Darth Vader", Gender: "male", BirthYear: "41.9BBY"},
	{Name: "Leia Organa", Gender: "female", BirthYear: "19BBY"},
	{Name: "Obi-Wan Kenobi", Gender: "male", BirthYear: "57BBY"},
	{Name: "Chewbacca", Gender: "male", BirthYear: "200BBY"},
	{Name: "Han Solo", Gender: "male", BirthYear: "29BBY"},
	{Name: "Yoda", Gender: "male", BirthYear: "896BBY"},
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dbPath := "data/starwars.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("failed to create database directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sqliteRepo.New(dbPath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	planetRepo := db.Planets()
	for i := range planets {
		if err := planetRepo.Insert(ctx, &planets[i]); err != nil {
			logger.Error("failed to seed planet",
				slog.String("name", planets[i].Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}
	logger.Info("seeded planets", slog.Int("count", len(planets)))

	personRepo := db.People()
	for i := range people {
		if err := personRepo.Insert(ctx, &people[i]); err != nil {
			logger.Error("failed to seed person",
				slog.String("name", people[i].Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}
	logger.Info("seeded people", slog.Int("count", len(people)))

	logger.Info("seeding complete", slog.String("database", dbPath))
}
