// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere Go works.
//
// The pattern throughout this package is always:
//  1. sql.Open(driverName, dataSourceName) → creates a pool
//  2. db.QueryContext / db.ExecContext     → runs queries
//  3. rows.Scan(&field1, &field2)          → reads results into Go variables
package sqlite

import (
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// `_ "modernc.org/sqlite"` is a side-effect only import. The package's
	// init() registers itself with database/sql as a driver named "sqlite",
	// so sql.Open("sqlite", ...) below knows how to talk to SQLite.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and hands out the per-entity
// repositories (users, planets, people, favorites). One connection pool,
// one set of migrations, one lifecycle.
//
// WHY PER-ENTITY REPO TYPES?
// The four repository interfaces all declare Insert/FindByID/FindAll, and a
// single type cannot implement two methods with the same name but different
// signatures. So each entity gets a small repo struct sharing the pool.
type DB struct {
	conn *sql.DB
}

// Users returns the UserRepository backed by this pool.
func (db *DB) Users() *UserRepo { return &UserRepo{conn: db.conn} }

// Planets returns the PlanetRepository backed by this pool.
func (db *DB) Planets() *PlanetRepo { return &PlanetRepo{conn: db.conn} }

// People returns the PersonRepository backed by this pool.
func (db *DB) People() *PersonRepo { return &PersonRepo{conn: db.conn} }

// Favorites returns the FavoriteRepository backed by this pool.
func (db *DB) Favorites() *FavoriteRepo { return &FavoriteRepo{conn: db.conn} }

// New opens a SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/starwars.db"  → file-based database (persistent)
//   - ":memory:"          → in-memory database (great for tests, lost on close)
//
// sql.Open does not actually connect — it just creates a pool manager — so we
// Ping() to surface a bad path or permissions problem immediately instead of
// on the first query.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in progress.
	// Default SQLite locks the entire database during writes, which is
	// hostile to a web server handling parallel requests.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite (backwards compatibility).
	// We turn them on for the favorites → planets/people references.
	// Note favorites.user_id is deliberately NOT declared as a foreign key —
	// see migrate() below.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. Wherever you call New(),
// defer Close() so pending WAL writes are flushed on shutdown.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the four tables. CREATE TABLE IF NOT EXISTS is idempotent,
// so running this on an existing database is safe.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			email     TEXT NOT NULL,
			password  TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS planets (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			climate    TEXT NOT NULL DEFAULT '',
			terrain    TEXT NOT NULL DEFAULT '',
			population TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating planets table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS people (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			gender     TEXT NOT NULL DEFAULT '',
			birth_year TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating people table: %w", err)
	}

	// favorites.user_id carries NO REFERENCES clause on purpose: the API
	// contract does not validate user existence when a favorite is added, so
	// the schema must accept user ids with no matching users row even with
	// foreign_keys=ON. The planet/people references are safe — the service
	// layer verifies the target exists before inserting, and neither table
	// supports deletes.
	//
	// The CHECK enforces the exactly-one-target invariant: a favorite points
	// at a planet or a person, never both, never neither.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id   INTEGER NOT NULL,
			planet_id INTEGER REFERENCES planets(id),
			people_id INTEGER REFERENCES people(id),
			CHECK ((planet_id IS NULL) <> (people_id IS NULL))
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_user_id ON favorites(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating favorites table: %w", err)
	}

	return nil
}
